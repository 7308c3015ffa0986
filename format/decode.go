package format

import (
	"fmt"
	"math"
	"slices"

	"chromalite/colorspace"
	"chromalite/hexcode"
)

func probeHex(args []any) bool {
	if len(args) != 1 {
		return false
	}
	s, ok := args[0].(string)
	return ok && hexcode.Match(s)
}

func decodeHex(args []any) (colorspace.RGBA, error) {
	if len(args) != 1 {
		return colorspace.RGBA{}, fmt.Errorf("%w: hex expects one string, got %d arguments", ErrUnknownFormat, len(args))
	}
	s, ok := args[0].(string)
	if !ok {
		return colorspace.RGBA{}, fmt.Errorf("%w: hex expects a string, got %T", ErrUnknownFormat, args[0])
	}
	return hexcode.Decode(s)
}

func probeNumbers(counts ...int) Probe {
	return func(args []any) bool {
		v, ok := Numbers(args)
		return ok && slices.Contains(counts, len(v))
	}
}

// Numbers unpacks args given either as individual numbers or as a single
// numeric slice.
func Numbers(args []any) ([]float64, bool) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case []float64:
			return slices.Clone(v), true
		case []int:
			res := make([]float64, len(v))
			for i, x := range v {
				res[i] = float64(x)
			}
			return res, true
		case []any:
			return Numbers(v)
		}
	}

	res := make([]float64, len(args))
	for i, a := range args {
		x, ok := ToFloat(a)
		if !ok {
			return nil, false
		}
		res[i] = x
	}
	return res, true
}

// ToFloat converts any Go numeric type to float64.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// triple unpacks three channels and an optional alpha that defaults to 1.
// Components must be finite, except that NaN marks an undefined hue.
func triple(mode Mode, args []any) ([3]float64, float64, error) {
	v, ok := Numbers(args)
	if !ok || len(v) < 3 || len(v) > 4 {
		return [3]float64{}, 0, fmt.Errorf("%w: %s expects 3 or 4 numbers, got %v", ErrUnknownFormat, mode, args)
	}
	for i, x := range v {
		if math.IsNaN(x) && i == mode.HueChannel() {
			continue
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return [3]float64{}, 0, fmt.Errorf("%w: %s component %d is %v", ErrUnknownFormat, mode, i, x)
		}
	}
	alpha := 1.0
	if len(v) == 4 {
		alpha = v[3]
	}
	return [3]float64{v[0], v[1], v[2]}, alpha, nil
}

func decodeRGB(args []any) (colorspace.RGBA, error) {
	v, a, err := triple(RGB, args)
	if err != nil {
		return colorspace.RGBA{}, err
	}
	return colorspace.RGBA{R: v[0], G: v[1], B: v[2], A: a}, nil
}

func decodeHSL(args []any) (colorspace.RGBA, error) {
	v, a, err := triple(HSL, args)
	if err != nil {
		return colorspace.RGBA{}, err
	}
	r, g, b := colorspace.HSLToRGB(colorspace.HSL{H: colorspace.Deg(v[0]), S: v[1], L: v[2]})
	return colorspace.RGBA{R: r, G: g, B: b, A: a}, nil
}

func decodeLCH(args []any) (colorspace.RGBA, error) {
	v, a, err := triple(LCH, args)
	if err != nil {
		return colorspace.RGBA{}, err
	}
	r, g, b := colorspace.LChToRGB(colorspace.LCh{L: v[0], C: v[1], H: colorspace.Deg(v[2])})
	return colorspace.RGBA{R: r, G: g, B: b, A: a}, nil
}

func decodeLab(args []any) (colorspace.RGBA, error) {
	v, a, err := triple(Lab, args)
	if err != nil {
		return colorspace.RGBA{}, err
	}
	r, g, b := colorspace.LabToRGB(colorspace.Lab{L: v[0], A: v[1], B: v[2]})
	return colorspace.RGBA{R: r, G: g, B: b, A: a}, nil
}
