package format

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"chromalite/colorspace"
)

var ErrUnknownFormat = errors.New("unknown format")

// Decoder turns raw constructor arguments into an unclipped RGBA value.
type Decoder func(args []any) (colorspace.RGBA, error)

// Probe reports whether args look like input for its format.
type Probe func(args []any) bool

type Entry struct {
	Mode     Mode
	Decode   Decoder
	Probe    Probe // nil for formats that must be named explicitly
	Priority int   // probes with higher priority are tried first
}

// Registry maps modes to decoders and holds the autodetection order. It is
// read-only once built and safe for concurrent use.
type Registry struct {
	decoders map[Mode]Decoder
	probes   []Entry
}

// NewRegistry builds a registry from entries. Probes are ordered by
// descending priority; equal priorities keep their registration order.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		decoders: make(map[Mode]Decoder, len(entries)),
	}
	for _, e := range entries {
		r.decoders[e.Mode] = e.Decode
		if e.Probe != nil {
			r.probes = append(r.probes, e)
		}
	}

	slices.SortStableFunc(r.probes, func(a, b Entry) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return r
}

// Default holds the hex, rgb, hsl, lch and lab formats. Hex strings and
// numeric triples (read as hsl) are detected; rgb and lab must be named.
var Default = NewRegistry(
	Entry{Mode: Hex, Decode: decodeHex, Probe: probeHex, Priority: 4},
	Entry{Mode: HSL, Decode: decodeHSL, Probe: probeNumbers(3), Priority: 2},
	Entry{Mode: LCH, Decode: decodeLCH, Probe: probeNumbers(3), Priority: 2},
	Entry{Mode: RGB, Decode: decodeRGB},
	Entry{Mode: Lab, Decode: decodeLab},
)

// Detect returns the mode of the first matching probe.
func (r *Registry) Detect(args []any) (Mode, error) {
	for _, p := range r.probes {
		if p.Probe(args) {
			return p.Mode, nil
		}
	}
	return Hex, fmt.Errorf("%w: %v", ErrUnknownFormat, args)
}

// Decode converts args using the decoder registered for mode.
func (r *Registry) Decode(mode Mode, args []any) (colorspace.RGBA, error) {
	dec, ok := r.decoders[mode]
	if !ok {
		return colorspace.RGBA{}, fmt.Errorf("%w: %s", ErrUnknownFormat, mode)
	}
	return dec(args)
}

// DecodeAuto detects the format of args and decodes them.
func (r *Registry) DecodeAuto(args []any) (Mode, colorspace.RGBA, error) {
	mode, err := r.Detect(args)
	if err != nil {
		return mode, colorspace.RGBA{}, err
	}
	c, err := r.Decode(mode, args)
	return mode, c, err
}

// Modes lists the registered modes in autodetection order, followed by
// modes that can only be named explicitly.
func (r *Registry) Modes() []Mode {
	res := make([]Mode, 0, len(r.decoders))
	for _, p := range r.probes {
		res = append(res, p.Mode)
	}
	for m := range modeNames {
		if _, ok := r.decoders[Mode(m)]; ok && !slices.Contains(res, Mode(m)) {
			res = append(res, Mode(m))
		}
	}
	return res
}
