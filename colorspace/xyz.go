// based on:
// http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
// http://www.brucelindbloom.com/index.html?Eqn_ChromAdapt.html

package colorspace

// XYZ is a CIE 1931 tristimulus value relative to the D65 white point.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

type mat3 [3][3]float64

func (m *mat3) apply(v XYZ) XYZ {
	return XYZ{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// D65 reference white.
var D65 = XYZ{X: 0.95047, Y: 1, Z: 1.08883}

// matrices are never written to after initialisation
var (
	rgbToXYZ = mat3{
		{0.4124564390896922, 0.357576077643909, 0.18043748326639894},
		{0.21267285140562253, 0.715152155287818, 0.07217499330655958},
		{0.0193338955823293, 0.11919202588130297, 0.9503040785363679},
	}

	xyzToRGB = mat3{
		{3.2404541621141045, -1.5371385127977166, -0.498531409556016},
		{-0.9692660305051868, 1.8760108454466942, 0.041556017530349834},
		{0.055643430959114726, -0.2040259135167538, 1.0572251882231791},
	}

	bradford = mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}

	bradfordInv = mat3{
		{0.9869929054667123, -0.14705425642099013, 0.15996265166373125},
		{0.43230526972339456, 0.5183602715367776, 0.0492912282128556},
		{-0.008528664575177328, 0.04004282165408487, 0.9684866957875502},
	}

	// cone response of the sRGB source white
	sourceCone = XYZ{X: 0.9414285350000001, Y: 1.040417467, Z: 1.089532651}
	// cone response of the Lab reference white
	destCone = bradford.apply(D65)
)

// adapt maps a tristimulus value between the source and destination whites
// with the Bradford transform. forward goes from the sRGB white to D65.
func adapt(v XYZ, forward bool) XYZ {
	cone := bradford.apply(v)
	if forward {
		cone.X *= destCone.X / sourceCone.X
		cone.Y *= destCone.Y / sourceCone.Y
		cone.Z *= destCone.Z / sourceCone.Z
	} else {
		cone.X *= sourceCone.X / destCone.X
		cone.Y *= sourceCone.Y / destCone.Y
		cone.Z *= sourceCone.Z / destCone.Z
	}
	return bradfordInv.apply(cone)
}

// RGBToXYZ converts sRGB channels in [0,255] to adapted XYZ.
func RGBToXYZ(r, g, b float64) XYZ {
	lin := XYZ{
		X: GammaDecode(r / 255),
		Y: GammaDecode(g / 255),
		Z: GammaDecode(b / 255),
	}
	return adapt(rgbToXYZ.apply(lin), true)
}

// XYZToRGB converts adapted XYZ back to sRGB channels in [0,255]. The result
// is not clamped.
func XYZToRGB(v XYZ) (r, g, b float64) {
	lin := xyzToRGB.apply(adapt(v, false))
	return GammaEncode(lin.X) * 255, GammaEncode(lin.Y) * 255, GammaEncode(lin.Z) * 255
}
