// Package chroma provides an sRGB color value that can be read and edited
// through any of the representations known to the format registry.
//
// A Color is a small value type. Methods with value receivers never modify
// the receiver and return a new Color. The pointer methods SetAlpha and
// Update edit the color in place; they must not be called concurrently on
// the same Color, while reading distinct Colors needs no coordination.
package chroma

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"chromalite/colorspace"
	"chromalite/format"
	"chromalite/hexcode"
)

// Color stores a single clamped RGBA tuple. Every other representation is
// derived from it on demand.
type Color struct {
	rgba      colorspace.RGBA
	unclipped colorspace.RGBA
	clipped   bool
}

var Model = color.ModelFunc(modelConvert)

func modelConvert(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	return FromColor(c)
}

func fromRGBA(c colorspace.RGBA) Color {
	cl, clipped := c.Clip()
	return Color{
		rgba:      cl,
		unclipped: c,
		clipped:   clipped,
	}
}

// New builds a Color from raw arguments using the default registry. See
// NewFrom.
func New(args ...any) (Color, error) {
	return NewFrom(format.Default, args...)
}

// NewFrom builds a Color from raw arguments. With two or more arguments a
// trailing string names the input mode, e.g. New(200, 0, 0, "rgb");
// otherwise the format is detected by the registry. A single Color argument
// is returned unchanged.
func NewFrom(reg *format.Registry, args ...any) (Color, error) {
	if len(args) == 1 {
		switch c := args[0].(type) {
		case Color:
			return c, nil
		case *Color:
			if c == nil {
				return Color{}, fmt.Errorf("%w: nil *Color", format.ErrUnknownFormat)
			}
			return *c, nil
		}
	}

	if n := len(args); n >= 2 {
		if name, ok := args[n-1].(string); ok {
			mode, err := format.ParseMode(name)
			if err != nil {
				return Color{}, err
			}
			rgba, err := reg.Decode(mode, args[:n-1])
			if err != nil {
				return Color{}, err
			}
			return fromRGBA(rgba), nil
		}
	}

	_, rgba, err := reg.DecodeAuto(args)
	if err != nil {
		return Color{}, err
	}
	return fromRGBA(rgba), nil
}

// FromMode builds a Color from the channel values of mode, with an optional
// fourth alpha value.
func FromMode(mode format.Mode, values ...float64) (Color, error) {
	rgba, err := format.Default.Decode(mode, []any{values})
	if err != nil {
		return Color{}, err
	}
	return fromRGBA(rgba), nil
}

// FromColor converts any image/color value.
func FromColor(c color.Color) Color {
	return fromRGBA(colorspace.RGBAModel.Convert(c).(colorspace.RGBA))
}

// Parse reads either a hex color or "mode:v1,v2,v3[,alpha]", for example
// "hsl:204,0.7,0.53".
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	name, list, found := strings.Cut(s, ":")
	if !found {
		return New(s)
	}

	mode, err := format.ParseMode(strings.TrimSpace(name))
	if err != nil {
		return Color{}, err
	}

	fields := strings.Split(list, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		if values[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return Color{}, fmt.Errorf("invalid %s component %q: %w", mode, f, err)
		}
	}
	return FromMode(mode, values...)
}

// RGBA implements color.Color.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return c.rgba.RGBA()
}

// Tuple returns the stored, clamped RGBA tuple.
func (c Color) Tuple() colorspace.RGBA {
	return c.rgba
}

// Unclipped returns the tuple as it was before clamping.
func (c Color) Unclipped() colorspace.RGBA {
	return c.unclipped
}

// Clipped reports whether r, g or b had to be clamped into [0,255].
func (c Color) Clipped() bool {
	return c.clipped
}

func (c Color) Hex(mode hexcode.Mode) string {
	return hexcode.Encode(c.rgba, mode)
}

func (c Color) HSL() colorspace.HSL {
	return colorspace.RGBToHSL(c.rgba.R, c.rgba.G, c.rgba.B)
}

func (c Color) LCh() colorspace.LCh {
	return colorspace.RGBToLCh(c.rgba.R, c.rgba.G, c.rgba.B)
}

func (c Color) Lab() colorspace.Lab {
	return colorspace.RGBToLab(c.rgba.R, c.rgba.G, c.rgba.B)
}

func (c Color) String() string {
	return c.Hex(hexcode.Auto)
}

func (c Color) Alpha() float64 {
	return c.rgba.A
}

// WithAlpha returns a copy of c with alpha replaced. Alpha is clamped to
// [0,1] without marking the color as clipped, and Unclipped keeps the
// original channels.
func (c Color) WithAlpha(a float64) Color {
	unclipped := c.unclipped
	unclipped.A = a
	return fromRGBA(unclipped)
}

// SetAlpha replaces the alpha of c in place.
func (c *Color) SetAlpha(a float64) {
	*c = c.WithAlpha(a)
}
