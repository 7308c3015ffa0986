package chroma

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"chromalite/colorspace"
	"chromalite/format"
)

var (
	ErrUnknownChannel   = errors.New("unknown channel")
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrUndefinedHue     = errors.New("hue is undefined")
)

// channels is one representation of a color as three plain numbers. hueOK
// is false when the mode has a hue channel and the color is achromatic.
type channels struct {
	mode  format.Mode
	v     [3]float64
	hueOK bool
}

func (c Color) channels(mode format.Mode) (channels, error) {
	ch := channels{mode: mode, hueOK: true}
	switch mode {
	case format.RGB:
		ch.v = [3]float64{c.rgba.R, c.rgba.G, c.rgba.B}
	case format.HSL:
		hsl := c.HSL()
		ch.v = [3]float64{hsl.H.Or(0), hsl.S, hsl.L}
		ch.hueOK = hsl.H.Defined()
	case format.LCH:
		lch := c.LCh()
		ch.v = [3]float64{lch.L, lch.C, lch.H.Or(0)}
		ch.hueOK = lch.H.Defined()
	case format.Lab:
		lab := c.Lab()
		ch.v = [3]float64{lab.L, lab.A, lab.B}
	default:
		return ch, fmt.Errorf("%w: mode %s has no channels", ErrUnknownChannel, mode)
	}
	return ch, nil
}

func (ch channels) hue(deg float64) colorspace.Hue {
	if !ch.hueOK {
		return colorspace.NoHue
	}
	return colorspace.Deg(deg)
}

func (ch channels) rgba(alpha float64) colorspace.RGBA {
	res := colorspace.RGBA{A: alpha}
	switch ch.mode {
	case format.RGB:
		res.R, res.G, res.B = ch.v[0], ch.v[1], ch.v[2]
	case format.HSL:
		res.R, res.G, res.B = colorspace.HSLToRGB(colorspace.HSL{H: ch.hue(ch.v[0]), S: ch.v[1], L: ch.v[2]})
	case format.LCH:
		res.R, res.G, res.B = colorspace.LChToRGB(colorspace.LCh{L: ch.v[0], C: ch.v[1], H: ch.hue(ch.v[2])})
	case format.Lab:
		res.R, res.G, res.B = colorspace.LabToRGB(colorspace.Lab{L: ch.v[0], A: ch.v[1], B: ch.v[2]})
	}
	return res
}

// apply edits channel i. Relative edits of an undefined hue leave it
// undefined; absolute values define it. Results that are not finite are
// rejected.
func (ch *channels) apply(i int, value any) error {
	x, absolute, err := ch.resolve(i, value)
	if err != nil {
		return err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: %v gives %v", ErrUnsupportedValue, value, x)
	}
	ch.v[i] = x
	if absolute && i == ch.mode.HueChannel() {
		ch.hueOK = true
	}
	return nil
}

// resolve computes the new value of channel i and whether it replaces the
// old one outright.
func (ch *channels) resolve(i int, value any) (float64, bool, error) {
	if x, ok := format.ToFloat(value); ok {
		return x, true, nil
	}

	s, ok := value.(string)
	if !ok {
		return 0, false, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, fmt.Errorf("%w: empty string", ErrUnsupportedValue)
	}

	var operand string
	switch s[0] {
	case '*', '/':
		operand = s[1:]
	default:
		operand = s
	}
	x, err := strconv.ParseFloat(operand, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q: %w", ErrUnsupportedValue, s, err)
	}

	switch s[0] {
	case '+', '-':
		return ch.v[i] + x, false, nil
	case '*':
		return ch.v[i] * x, false, nil
	case '/':
		return ch.v[i] / x, false, nil
	}
	return x, true, nil
}

// parsePath splits "<mode>.<channel>" into the mode and channel index.
func parsePath(path string) (format.Mode, int, error) {
	name, letter, found := strings.Cut(path, ".")
	mode, err := format.ParseMode(name)
	if err != nil {
		return mode, -1, err
	}
	if !found {
		return mode, -1, fmt.Errorf("%w: no channel in %q", ErrUnknownChannel, path)
	}

	i, ok := mode.Channel(letter)
	if !ok {
		return mode, -1, fmt.Errorf("%w %q in mode %s", ErrUnknownChannel, letter, mode)
	}
	return mode, i, nil
}

// Get returns a single channel, addressed as "<mode>.<channel>", for
// example "hsl.l" or "lch.c". Reading the hue of an achromatic color fails
// with ErrUndefinedHue.
func (c Color) Get(path string) (float64, error) {
	mode, i, err := parsePath(path)
	if err != nil {
		return 0, err
	}
	ch, err := c.channels(mode)
	if err != nil {
		return 0, err
	}
	if i == mode.HueChannel() && !ch.hueOK {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedHue, path)
	}
	return ch.v[i], nil
}

// Set returns a copy of c with one channel replaced. value is either a
// number or a string; strings starting with '+' or '-' add to the current
// value, '*' and '/' scale it, and anything else is parsed as an absolute
// number. Alpha is kept.
func (c Color) Set(path string, value any) (Color, error) {
	mode, i, err := parsePath(path)
	if err != nil {
		return c, err
	}
	ch, err := c.channels(mode)
	if err != nil {
		return c, err
	}
	if err := ch.apply(i, value); err != nil {
		return c, err
	}
	return fromRGBA(ch.rgba(c.rgba.A)), nil
}

// Update is Set applied in place. On error c is left unchanged.
func (c *Color) Update(path string, value any) error {
	out, err := c.Set(path, value)
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// Text formats c as "<mode>:v1,v2,v3" with prec decimals, appending alpha
// when it is below 1, so the result can be read back by Parse. An undefined
// hue is written as NaN. format.Hex yields the hex form.
func (c Color) Text(mode format.Mode, prec int) (string, error) {
	if mode == format.Hex {
		return c.String(), nil
	}
	ch, err := c.channels(mode)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(mode.String())
	sb.WriteByte(':')
	for i, v := range ch.v {
		if i > 0 {
			sb.WriteByte(',')
		}
		if i == mode.HueChannel() && !ch.hueOK {
			sb.WriteString("NaN")
			continue
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', prec, 64))
	}
	if c.rgba.A < 1 {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(c.rgba.A, 'f', -1, 64))
	}
	return sb.String(), nil
}
