// based on:
// IEC 61966-2-1 sRGB transfer function

package colorspace

import "math"

// GammaDecode converts a companded sRGB channel in [0,1] to linear light.
// The curve is mirrored for negative input, so any real value is accepted.
func GammaDecode(companded float64) float64 {
	sign, v := splitSign(companded)

	var linear float64
	if v <= 0.04045 {
		linear = v / 12.92
	} else {
		linear = math.Pow((v+0.055)/1.055, 2.4)
	}
	return sign * linear
}

const pow float64 = 1.0 / 2.4

// GammaEncode is the inverse of GammaDecode.
func GammaEncode(linear float64) float64 {
	sign, v := splitSign(linear)

	var companded float64
	if v <= 0.0031308 {
		companded = v * 12.92
	} else {
		companded = 1.055*math.Pow(v, pow) - 0.055
	}
	return sign * companded
}

func splitSign(x float64) (float64, float64) {
	switch {
	case x < 0:
		return -1, -x
	case x > 0:
		return 1, x
	}
	return 0, 0
}
