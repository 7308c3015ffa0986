package adjust

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"chromalite/chroma"
	"chromalite/format"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Color     string   `arg:"" help:"Color to adjust: hex or mode:v1,v2,v3[,alpha]"`
	Set       []string `help:"Channel edits applied in order, as PATH=VALUE; VALUE may start with +, -, * or / (e.g. hsl.l=*1.2)" sep:"none"`
	Saturate  float64  `help:"Saturation steps applied after the channel edits; negative values desaturate" default:"0"`
	Alpha     string   `help:"Replace alpha with a value in [0,1]"`
	Get       string   `help:"Print a single channel such as hsl.l instead of the color"`
	To        string   `help:"Output representation" enum:"hex,rgb,hsl,lch,lab" default:"hex"`
	Precision int      `help:"Decimal places for channel values" default:"4"`

	mode  format.Mode `kong:"-"`
	alpha *float64    `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.mode, err = format.ParseMode(c.To); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	for _, s := range c.Set {
		if path, _, found := strings.Cut(s, "="); !found || path == "" {
			return fmt.Errorf("invalid channel edit %q, expected PATH=VALUE", s)
		}
	}

	if c.Alpha != "" {
		a, err := strconv.ParseFloat(c.Alpha, 64)
		if err != nil {
			return fmt.Errorf("invalid alpha %q: %w", c.Alpha, err)
		}
		c.alpha = &a
	}

	if c.Precision < 0 {
		return fmt.Errorf("invalid precision: %d", c.Precision)
	}
	return nil
}

// apply runs the requested edits on col in place.
func (c *CLICmd) apply(logger *slog.Logger, col *chroma.Color) error {
	for _, s := range c.Set {
		path, value, _ := strings.Cut(s, "=")
		if err := col.Update(path, value); err != nil {
			return fmt.Errorf("could not set %s: %w", path, err)
		}
		logger.Debug("channel set", "path", path, "value", value, "color", col.String())
	}

	if c.Saturate != 0 {
		*col = col.Saturate(c.Saturate)
		logger.Debug("saturated", "amount", c.Saturate, "color", col.String())
	}

	if c.alpha != nil {
		col.SetAlpha(*c.alpha)
	}

	if col.Clipped() {
		logger.Warn("color clipped to sRGB gamut", "unclipped", col.Unclipped())
	}
	return nil
}

func (c *CLICmd) Run(out io.Writer) error {
	logger := slog.Default().With("input", c.Color)

	col, err := chroma.Parse(c.Color)
	if err != nil {
		return fmt.Errorf("could not read color %q: %w", c.Color, err)
	}

	if err := c.apply(logger, &col); err != nil {
		return err
	}

	var text string
	if c.Get != "" {
		v, err := col.Get(c.Get)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", c.Get, err)
		}
		text = strconv.FormatFloat(v, 'f', c.Precision, 64)
	} else if text, err = col.Text(c.mode, c.Precision); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, text); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return nil
}
