package colorspace

import (
	"image/color"
	"math"
)

// Hue is an angle in degrees, normalised to [0,360). The zero value is
// NoHue, the hue of an achromatic color.
type Hue struct {
	deg float64
	ok  bool
}

var NoHue = Hue{}

// Deg returns the hue for the given angle. NaN and infinities yield NoHue.
func Deg(deg float64) Hue {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return NoHue
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return Hue{deg: deg, ok: true}
}

// Degrees returns the angle and whether the hue is defined.
func (h Hue) Degrees() (float64, bool) {
	return h.deg, h.ok
}

// Defined reports whether h carries an angle.
func (h Hue) Defined() bool {
	return h.ok
}

// Or returns the angle, or def when the hue is undefined.
func (h Hue) Or(def float64) float64 {
	if !h.ok {
		return def
	}
	return h.deg
}

func (h Hue) Equal(o Hue) bool {
	return h == o
}

// LCh is the cylindrical form of Lab.
type LCh struct {
	L float64 // lightness
	C float64 // chroma, >= 0
	H Hue     // hue angle
}

var LChModel = color.ModelFunc(lchConvert)

func lchConvert(c color.Color) color.Color {
	switch lc := c.(type) {
	case LCh:
		return c
	case Lab:
		return lc.LCh()
	}

	return labConvert(c).(Lab).LCh()
}

func (lc LCh) RGBA() (uint32, uint32, uint32, uint32) {
	return lc.Lab().RGBA()
}

// LCh converts to polar form. Chroma that rounds to zero at four decimal
// places has no hue.
func (lc Lab) LCh() LCh {
	c := math.Sqrt(lc.A*lc.A + lc.B*lc.B)
	h := NoHue
	if math.Round(c*10000) != 0 {
		h = Deg(math.Atan2(lc.B, lc.A) * 180 / math.Pi)
	}

	return LCh{L: lc.L, C: c, H: h}
}

// Lab converts back to rectangular form; an undefined hue reads as 0.
func (lc LCh) Lab() Lab {
	h := lc.H.Or(0) * math.Pi / 180
	return Lab{
		L: lc.L,
		A: lc.C * math.Cos(h),
		B: lc.C * math.Sin(h),
	}
}

func RGBToLCh(r, g, b float64) LCh {
	return RGBToLab(r, g, b).LCh()
}

// LChToRGB returns unclamped sRGB channels in [0,255].
func LChToRGB(lc LCh) (r, g, b float64) {
	return LabToRGB(lc.Lab())
}
