package convert

import (
	"fmt"
	"io"
	"log/slog"

	"chromalite/chroma"
	"chromalite/format"
	"chromalite/hexcode"
	"chromalite/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Colors    []string     `arg:"" sep:"none" help:"Colors to convert: hex (#RGB, #RRGGBB, #RGBA, #RRGGBBAA) or mode:v1,v2,v3[,alpha]"`
	To        string       `help:"Output representation" enum:"hex,rgb,hsl,lch,lab" default:"hex"`
	HexMode   string       `help:"Alpha placement for hex output" enum:"auto,rgb,rgba,argb" default:"auto"`
	Precision int          `help:"Decimal places for channel values" default:"4"`
	mode      format.Mode  `kong:"-"`
	hexMode   hexcode.Mode `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.mode, err = format.ParseMode(c.To); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}
	if c.hexMode, err = hexcode.ParseMode(c.HexMode); err != nil {
		return err
	}
	if c.Precision < 0 {
		return fmt.Errorf("invalid precision: %d", c.Precision)
	}
	return nil
}

type result struct {
	text string
	err  error
}

// convert renders a single input in the requested representation.
func (c *CLICmd) convert(in string) (string, error) {
	col, err := chroma.Parse(in)
	if err != nil {
		return "", err
	}
	if col.Clipped() {
		slog.Warn("color clipped to sRGB gamut", "input", in, "unclipped", col.Unclipped())
	}

	if c.mode == format.Hex {
		return col.Hex(c.hexMode), nil
	}
	return col.Text(c.mode, c.Precision)
}

func (c *CLICmd) Run(pool *parallel.Pool, out io.Writer) error {
	results := parallel.Map(pool, c.Colors, func(_ int, in string) result {
		text, err := c.convert(in)
		return result{text: text, err: err}
	})

	var errCount int
	for i, res := range results {
		if res.err != nil {
			errCount++
			slog.Error("could not convert color", "input", c.Colors[i], "error", res.err)
			continue
		}
		if _, err := fmt.Fprintln(out, res.text); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}

	slog.Debug("stats", "converted", len(results)-errCount, "errors", errCount,
		"total", len(results), "workers", pool.Workers())

	if errCount > 0 {
		return fmt.Errorf("error processing %d colors", errCount)
	}
	return nil
}
