package format

import (
	"fmt"
	"strings"
)

// Mode is a color representation known to the registry.
type Mode int

const (
	Hex Mode = iota
	RGB
	HSL
	LCH
	Lab
)

var modeNames = [...]string{
	Hex: "hex",
	RGB: "rgb",
	HSL: "hsl",
	LCH: "lch",
	Lab: "lab",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode looks up a mode by name, ignoring case.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return Hex, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Channels returns the ordered channel letters of m. Hex has none.
func (m Mode) Channels() string {
	if m == Hex {
		return ""
	}
	return m.String()
}

// Channel returns the index of the channel named by letter.
func (m Mode) Channel(letter string) (int, bool) {
	if len(letter) != 1 {
		return -1, false
	}
	i := strings.Index(m.Channels(), strings.ToLower(letter))
	return i, i >= 0
}

// HueChannel returns the index of the hue channel, or -1.
func (m Mode) HueChannel() int {
	switch m {
	case HSL:
		return 0
	case LCH:
		return 2
	}
	return -1
}
