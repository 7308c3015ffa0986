package colorspace

// HSL is hue, saturation and lightness, with S and L in [0,1].
type HSL struct {
	H Hue
	S float64
	L float64
}

// RGBToHSL converts sRGB channels in [0,255]. Grays have no hue.
func RGBToHSL(r, g, b float64) HSL {
	r /= 255
	g /= 255
	b /= 255

	lo := min(r, g, b)
	hi := max(r, g, b)
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: NoHue, S: 0, L: l}
	}

	d := hi - lo
	var s float64
	if l < 0.5 {
		s = d / (hi + lo)
	} else {
		s = d / (2 - hi - lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}

	return HSL{H: Deg(h * 60), S: s, L: l}
}

// HSLToRGB returns sRGB channels in [0,255]. An undefined hue reads as 0.
func HSLToRGB(c HSL) (r, g, b float64) {
	if c.S == 0 {
		v := c.L * 255
		return v, v, v
	}

	var t2 float64
	if c.L < 0.5 {
		t2 = c.L * (1 + c.S)
	} else {
		t2 = c.L + c.S - c.L*c.S
	}
	t1 := 2*c.L - t2
	h := c.H.Or(0) / 360

	return hueToChannel(t1, t2, h+1.0/3) * 255,
		hueToChannel(t1, t2, h) * 255,
		hueToChannel(t1, t2, h-1.0/3) * 255
}

func hueToChannel(t1, t2, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}

	switch {
	case 6*t < 1:
		return t1 + (t2-t1)*6*t
	case 2*t < 1:
		return t2
	case 3*t < 2:
		return t1 + (t2-t1)*(2.0/3-t)*6
	default:
		return t1
	}
}
