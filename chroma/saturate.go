package chroma

import "chromalite/colorspace"

// Kn converts saturation steps to LCh chroma.
const Kn = 18

// Saturate raises LCh chroma by amount*Kn, never going below zero. Alpha is
// carried over. An achromatic color gains chroma at hue 0.
func (c Color) Saturate(amount float64) Color {
	lch := c.LCh()
	lch.C = max(lch.C+Kn*amount, 0)

	r, g, b := colorspace.LChToRGB(lch)
	return fromRGBA(colorspace.RGBA{R: r, G: g, B: b, A: c.rgba.A})
}

func (c Color) Desaturate(amount float64) Color {
	return c.Saturate(-amount)
}
