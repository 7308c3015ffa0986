// based on:
// http://www.brucelindbloom.com/index.html?Eqn_XYZ_to_Lab.html
// http://www.brucelindbloom.com/index.html?Eqn_Lab_to_XYZ.html

package colorspace

import (
	"image/color"
	"math"
)

const (
	kE  = 216.0 / 24389.0 // (6/29)^3
	kK  = 24389.0 / 27.0
	kKE = 8.0 // kK * kE
)

// Lab is a CIE L*a*b* color relative to D65.
type Lab struct {
	L float64 // lightness, nominally [0,100]
	A float64 // green-red axis
	B float64 // blue-yellow axis
}

var LabModel = color.ModelFunc(labConvert)

func labConvert(c color.Color) color.Color {
	switch lc := c.(type) {
	case Lab:
		return c
	case LCh:
		return lc.Lab()
	}

	col := rgbaConvert(c).(RGBA)
	return RGBToLab(col.R, col.G, col.B)
}

// RGBA implements color.Color. Out of gamut colors are clamped.
func (lc Lab) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b := LabToRGB(lc)
	return RGBA{R: r, G: g, B: b, A: 1}.RGBA()
}

func labF(t float64) float64 {
	if t > kE {
		return math.Cbrt(t)
	}
	return (kK*t + 16) / 116
}

func XYZToLab(v XYZ) Lab {
	fx := labF(v.X / D65.X)
	fy := labF(v.Y / D65.Y)
	fz := labF(v.Z / D65.Z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func LabToXYZ(lc Lab) XYZ {
	fy := (lc.L + 16) / 116
	fx := 0.002*lc.A + fy
	fz := fy - 0.005*lc.B

	fx3 := fx * fx * fx
	fz3 := fz * fz * fz

	var xr, yr, zr float64
	if fx3 > kE {
		xr = fx3
	} else {
		xr = (116*fx - 16) / kK
	}
	if lc.L > kKE {
		yr = fy * fy * fy
	} else {
		yr = lc.L / kK
	}
	if fz3 > kE {
		zr = fz3
	} else {
		zr = (116*fz - 16) / kK
	}

	return XYZ{X: xr * D65.X, Y: yr * D65.Y, Z: zr * D65.Z}
}

func RGBToLab(r, g, b float64) Lab {
	return XYZToLab(RGBToXYZ(r, g, b))
}

// LabToRGB returns unclamped sRGB channels in [0,255].
func LabToRGB(lc Lab) (r, g, b float64) {
	return XYZToRGB(LabToXYZ(lc))
}
