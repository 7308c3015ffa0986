package hexcode

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"chromalite/colorspace"
)

var ErrMalformed = errors.New("unrecognized hex color format")

var (
	reHex  = regexp.MustCompile(`^#?([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	reHexA = regexp.MustCompile(`^#?([A-Fa-f0-9]{8}|[A-Fa-f0-9]{4})$`)
)

// Match reports whether s is #RGB, #RGBA, #RRGGBB or #RRGGBBAA, with the
// leading '#' optional.
func Match(s string) bool {
	return reHex.MatchString(s) || reHexA.MatchString(s)
}

// Decode parses a hex color. Short forms are expanded by doubling each
// digit. Alpha is rescaled to [0,1] and rounded to two decimals.
func Decode(s string) (colorspace.RGBA, error) {
	var digits string
	var hasAlpha bool
	if m := reHex.FindStringSubmatch(s); m != nil {
		digits = m[1]
	} else if m := reHexA.FindStringSubmatch(s); m != nil {
		digits, hasAlpha = m[1], true
	} else {
		return colorspace.RGBA{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	if len(digits) == 3 || len(digits) == 4 {
		var sb strings.Builder
		for _, d := range digits {
			sb.WriteRune(d)
			sb.WriteRune(d)
		}
		digits = sb.String()
	}

	u, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return colorspace.RGBA{}, fmt.Errorf("%w: %q: %w", ErrMalformed, s, err)
	}

	if !hasAlpha {
		return colorspace.RGBA{
			R: float64(u >> 16),
			G: float64((u >> 8) & 0xff),
			B: float64(u & 0xff),
			A: 1,
		}, nil
	}

	return colorspace.RGBA{
		R: float64((u >> 24) & 0xff),
		G: float64((u >> 16) & 0xff),
		B: float64((u >> 8) & 0xff),
		A: math.Round(float64(u&0xff)/0xff*100) / 100,
	}, nil
}

// Mode selects where, if anywhere, the alpha byte goes.
type Mode int

const (
	Auto Mode = iota // alpha byte only when not opaque
	RGB
	RGBA
	ARGB
)

var modeNames = [...]string{
	Auto: "auto",
	RGB:  "rgb",
	RGBA: "rgba",
	ARGB: "argb",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return Auto, fmt.Errorf("unsupported hex mode: %q", s)
}

// Encode formats c as #RRGGBB, #RRGGBBAA or #AARRGGBB depending on mode.
func Encode(c colorspace.RGBA, mode Mode) string {
	c, _ = c.Clip()
	if mode == Auto {
		if c.A < 1 {
			mode = RGBA
		} else {
			mode = RGB
		}
	}

	u := uint32(math.Round(c.R))<<16 | uint32(math.Round(c.G))<<8 | uint32(math.Round(c.B))
	rgb := fmt.Sprintf("%06x", u)
	alpha := fmt.Sprintf("%02x", uint8(math.Round(c.A*255)))

	switch mode {
	case RGBA:
		return "#" + rgb + alpha
	case ARGB:
		return "#" + alpha + rgb
	default:
		return "#" + rgb
	}
}
