package colorspace

import (
	"image/color"
	"math"
)

// RGBA is an sRGB color with r, g, b in [0,255] and alpha in [0,1].
// Values outside those ranges are allowed until Clip is called.
type RGBA struct {
	R float64
	G float64
	B float64
	A float64
}

var RGBAModel = color.ModelFunc(rgbaConvert)

func rgbaConvert(c color.Color) color.Color {
	if _, ok := c.(RGBA); ok {
		return c
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}

	// de-premultiply
	scale := 255 / float64(a)
	return RGBA{
		R: float64(r) * scale,
		G: float64(g) * scale,
		B: float64(b) * scale,
		A: float64(a) / 0xffff,
	}
}

// Clip limits r, g, b to [0,255] and alpha to [0,1]. The returned flag
// reports whether any of r, g or b had to be changed; alpha is clamped
// silently. A NaN channel becomes 0 and counts as clipped; a NaN alpha
// becomes 1.
func (c RGBA) Clip() (RGBA, bool) {
	clipped := !inRange(c.R, 0, 255) || !inRange(c.G, 0, 255) || !inRange(c.B, 0, 255)
	a := c.A
	if math.IsNaN(a) {
		a = 1
	}
	return RGBA{
		R: clamp(c.R, 0, 255),
		G: clamp(c.G, 0, 255),
		B: clamp(c.B, 0, 255),
		A: clamp(a, 0, 1),
	}, clipped
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c RGBA) RGBA() (uint32, uint32, uint32, uint32) {
	cl, _ := c.Clip()
	a := cl.A
	return uint32(math.Round(cl.R / 255 * a * 0xffff)),
		uint32(math.Round(cl.G / 255 * a * 0xffff)),
		uint32(math.Round(cl.B / 255 * a * 0xffff)),
		uint32(math.Round(a * 0xffff))
}

func inRange(x, min, max float64) bool {
	return x >= min && x <= max
}

// clamp maps NaN to min.
func clamp(x, min, max float64) float64 {
	if x < min || math.IsNaN(x) {
		return min
	} else if x > max {
		return max
	} else {
		return x
	}
}
