package chroma

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSaturate(t *testing.T) {
	c := mustNew(t, "#3498db")

	sat := c.Saturate(0.5)
	if got := sat.String(); got != "#009aeb" {
		t.Errorf("Saturate(0.5) = %q", got)
	}
	if !sat.Clipped() {
		t.Error("out of gamut result not marked as clipped")
	}

	if got := c.Desaturate(0.5).String(); got != "#5796cb" {
		t.Errorf("Desaturate(0.5) = %q", got)
	}

	if got := c.WithAlpha(0.3).Saturate(0.1).Alpha(); got != 0.3 {
		t.Errorf("alpha not kept: %v", got)
	}
}

func TestSaturateRoundTrip(t *testing.T) {
	for _, hex := range []string{"#78829a", "#c89696", "#648c64"} {
		c := mustNew(t, hex)
		back := c.Saturate(0.5).Desaturate(0.5)
		if back.Clipped() {
			t.Fatalf("%s: unexpected clipping", hex)
		}
		if d := cmp.Diff(c.Tuple(), back.Tuple(), cmpopts.EquateApprox(0, 1e-6)); d != "" {
			t.Errorf("%s round trip (-want +got):\n%s", hex, d)
		}
	}
}

func TestDesaturateClampsChroma(t *testing.T) {
	c := mustNew(t, "#3498db")

	gray := c.Desaturate(10)
	if got := gray.String(); got != "#919191" {
		t.Errorf("Desaturate(10) = %q", got)
	}
	if gray.LCh().H.Defined() {
		t.Error("fully desaturated color still has a hue")
	}

	// chroma clamped to zero loses the hue for good
	back := gray.Saturate(10)
	if back.String() == c.String() {
		t.Errorf("hue survived clamping: %v", back)
	}
}

func TestSaturateAchromatic(t *testing.T) {
	gray := mustNew(t, "#808080")
	out := gray.Saturate(1)
	if got := out.String(); got != "#9e7581" {
		t.Errorf("Saturate(1) on gray = %q", got)
	}
	if !out.LCh().H.Defined() {
		t.Error("saturated gray has no hue")
	}
	if math.Abs(out.LCh().C-Kn) > 1e-6 {
		t.Errorf("chroma = %v, want %v", out.LCh().C, Kn)
	}
}
