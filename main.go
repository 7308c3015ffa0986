package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"chromalite/adjust"
	"chromalite/convert"
	"chromalite/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"CHROMA_LOG_LEVEL"`
	Workers  int    `help:"Number of conversion workers, 0 uses GOMAXPROCS" default:"0" env:"CHROMA_WORKERS"`

	Convert convert.CLICmd `cmd:"" help:"Convert colors between hex, rgb, hsl, lch and lab"`
	Adjust  adjust.CLICmd  `cmd:"" help:"Edit channels, saturation or alpha of a color"`
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("chromalite"),
		kong.Description("Convert and adjust sRGB colors."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	)
	if err != nil {
		return fmt.Errorf("could not build command line parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.LogLevel, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(cli.Workers)
	defer pool.Close()

	slog.Debug("running", "cmd", kctx.Command(), "workers", pool.Workers())
	return kctx.Run(pool)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
