package chroma

import (
	"errors"
	"image/color"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"chromalite/colorspace"
	"chromalite/format"
	"chromalite/hexcode"
)

var _ color.Color = Color{}

func mustNew(t *testing.T, args ...any) Color {
	t.Helper()
	c, err := New(args...)
	if err != nil {
		t.Fatalf("New(%v): %v", args, err)
	}
	return c
}

func TestShortAndLongHexAgree(t *testing.T) {
	short := mustNew(t, "#f0f")
	long := mustNew(t, "#ff00ff")
	want := colorspace.RGBA{R: 255, G: 0, B: 255, A: 1}
	if d := cmp.Diff(want, short.Tuple()); d != "" {
		t.Errorf("#f0f (-want +got):\n%s", d)
	}
	if short != long {
		t.Errorf("%v != %v", short, long)
	}
}

func TestClampOnConstruction(t *testing.T) {
	c := mustNew(t, 300, -20, 128, "rgb")
	if d := cmp.Diff(colorspace.RGBA{R: 255, G: 0, B: 128, A: 1}, c.Tuple()); d != "" {
		t.Errorf("tuple (-want +got):\n%s", d)
	}
	if !c.Clipped() {
		t.Error("Clipped() = false")
	}
	if d := cmp.Diff(colorspace.RGBA{R: 300, G: -20, B: 128, A: 1}, c.Unclipped()); d != "" {
		t.Errorf("unclipped (-want +got):\n%s", d)
	}

	if mustNew(t, "#3498db").Clipped() {
		t.Error("in-gamut color marked as clipped")
	}
}

func TestNumbersDetectAsHSL(t *testing.T) {
	if got := mustNew(t, 0.5, 0.5, 0.5).String(); got != "#bf4140" {
		t.Errorf("New(0.5, 0.5, 0.5) = %q, want #bf4140", got)
	}
	if _, err := New(200, 0, 0, 0.5); !errors.Is(err, format.ErrUnknownFormat) {
		t.Errorf("four bare numbers: error = %v, want ErrUnknownFormat", err)
	}
}

func TestExplicitMode(t *testing.T) {
	c := mustNew(t, []float64{200, 0, 0}, "rgb")
	if got := c.Hex(hexcode.RGBA); got != "#c80000ff" {
		t.Errorf("Hex(rgba) = %q", got)
	}

	c = mustNew(t, 120, 1, 0.5, "HSL")
	if got := c.String(); got != "#00ff00" {
		t.Errorf("hsl(120,1,0.5) = %q", got)
	}

	c = mustNew(t, "#abc", "hex")
	if got := c.String(); got != "#aabbcc" {
		t.Errorf("explicit hex = %q", got)
	}
}

func TestConstructionErrors(t *testing.T) {
	cases := []struct {
		name string
		args []any
		want error
	}{
		{"unknown mode", []any{1, 2, 3, "cmyk"}, format.ErrUnknownFormat},
		{"not a color", []any{"zzz"}, format.ErrUnknownFormat},
		{"no arguments", nil, format.ErrUnknownFormat},
		{"malformed explicit hex", []any{"#12", "hex"}, hexcode.ErrMalformed},
		{"nil color", []any{(*Color)(nil)}, format.ErrUnknownFormat},
		{"nan channel", []any{math.NaN(), 0, 0, "rgb"}, format.ErrUnknownFormat},
		{"infinite lab", []any{50, math.Inf(1), 0, "lab"}, format.ErrUnknownFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.args...); !errors.Is(err, c.want) {
				t.Errorf("New(%v) error = %v, want %v", c.args, err, c.want)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	c := mustNew(t, "#3498db80")
	if got := mustNew(t, c); got != c {
		t.Errorf("New(c) = %v, want %v", got, c)
	}
	if got := mustNew(t, &c); got != c {
		t.Errorf("New(&c) = %v, want %v", got, c)
	}
}

func TestAchromaticHSL(t *testing.T) {
	hsl := mustNew(t, "#000000").HSL()
	if hsl.H.Defined() || hsl.S != 0 || hsl.L != 0 {
		t.Errorf("HSL() = %+v", hsl)
	}
}

func TestRepresentations(t *testing.T) {
	c := mustNew(t, "#3498db")
	if got := c.String(); got != "#3498db" {
		t.Errorf("String() = %q", got)
	}

	lab := c.Lab()
	want := colorspace.Lab{L: 60.15700129300606, A: -6.095993447197801, B: -42.22953588939609}
	if d := cmp.Diff(want, lab, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("Lab (-want +got):\n%s", d)
	}

	lch := c.LCh()
	if math.Abs(lch.C-42.66725720669271) > 1e-6 {
		t.Errorf("chroma = %v", lch.C)
	}
}

func TestWithAlphaKeepsUnclipped(t *testing.T) {
	c := mustNew(t, 300, -20, 128, "rgb").WithAlpha(0.5)
	if d := cmp.Diff(colorspace.RGBA{R: 300, G: -20, B: 128, A: 0.5}, c.Unclipped()); d != "" {
		t.Errorf("unclipped (-want +got):\n%s", d)
	}
	if !c.Clipped() || c.Tuple() != (colorspace.RGBA{R: 255, G: 0, B: 128, A: 0.5}) {
		t.Errorf("got %+v clipped=%v", c.Tuple(), c.Clipped())
	}

	nan := mustNew(t, "#3498db").WithAlpha(math.NaN())
	if nan.Alpha() != 1 || nan.String() != "#3498db" {
		t.Errorf("WithAlpha(NaN) = %v alpha %v", nan, nan.Alpha())
	}
}

func TestAlpha(t *testing.T) {
	c := mustNew(t, "#3498db")
	if c.Alpha() != 1 {
		t.Errorf("Alpha() = %v", c.Alpha())
	}

	half := c.WithAlpha(0.5)
	if half.Alpha() != 0.5 || c.Alpha() != 1 {
		t.Errorf("WithAlpha: new %v, original %v", half.Alpha(), c.Alpha())
	}
	if got := half.String(); got != "#3498db80" {
		t.Errorf("String() = %q", got)
	}

	c.SetAlpha(0.25)
	if c.Alpha() != 0.25 {
		t.Errorf("SetAlpha: %v", c.Alpha())
	}

	over := c.WithAlpha(1.5)
	if over.Alpha() != 1 || over.Clipped() {
		t.Errorf("alpha 1.5: alpha %v, clipped %v", over.Alpha(), over.Clipped())
	}
	if over.Unclipped().A != 1.5 {
		t.Errorf("unclipped alpha = %v", over.Unclipped().A)
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if got := c.String(); got != "#ff0000" {
		t.Errorf("FromColor = %q", got)
	}

	m := Model.Convert(color.Gray{Y: 0x80}).(Color)
	if got := m.String(); got != "#808080" {
		t.Errorf("Model.Convert = %q", got)
	}
	if got := Model.Convert(c); got != c {
		t.Errorf("Model.Convert(Color) = %v", got)
	}

	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %d %d %d %d", r, g, b, a)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#abc", "#aabbcc"},
		{" 3498db ", "#3498db"},
		{"hsl:120,1,0.5", "#00ff00"},
		{"rgb: 200, 0, 0, 0.5", "#c8000080"},
		{"lab:50,20,-30", "#7f6daa"},
		{"lch:50,0,0", "#777777"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Parse(c.in)
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != c.want {
				t.Errorf("Parse(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}

	for _, in := range []string{"cmyk:1,2,3", "rgb:1,2", "rgb:a,b,c", "nope"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded", in)
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	c := mustNew(t, "#3498db")
	want := c.String()

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 100 {
				if got := c.Saturate(1).Desaturate(1).String(); got == "" {
					t.Error("empty hex")
				}
				if got := c.String(); got != want {
					t.Errorf("String() = %q", got)
				}
			}
		})
	}
	wg.Wait()
}
