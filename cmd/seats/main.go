// Command seats reads a seat layout and reports how many seats end up
// occupied once the layout settles, once per neighbor rule.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"seat-ca/internal/config"
	"seat-ca/internal/logging"
	"seat-ca/internal/seating"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: seats [flags] [layout-file]")
		fs.PrintDefaults()
	}
	flags := config.NewConfig()
	flags.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}
	if fs.NArg() == 1 {
		flags.Input = fs.Arg(0)
	}

	cfg, err := config.Resolve(fs, flags)
	if cfg != nil && fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
		err = cfg.Validate()
	}
	logLevel := flags.LogLevel
	if cfg != nil {
		logLevel = cfg.LogLevel
	}
	logger := logging.New(logLevel, stderr)
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return 2
	}

	if err := solve(cfg, stdout, &logger); err != nil {
		logger.Error().Err(err).Str("input", cfg.Input).Msg("seat simulation failed")
		return 1
	}
	return 0
}

func solve(cfg *config.Config, stdout io.Writer, logger *zerolog.Logger) error {
	rules, err := cfg.ParsedRules()
	if err != nil {
		return err
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer f.Close()
	layout, err := seating.Parse(f)
	if err != nil {
		return err
	}
	logger.Debug().Int("rows", layout.Rows()).Int("cols", layout.Cols()).Msg("layout loaded")

	for _, rule := range rules {
		res, err := seating.NewSimulator(rule, cfg.Options(), logger).Run(layout)
		if err != nil {
			return fmt.Errorf("%s rule: %w", rule, err)
		}
		fmt.Fprintf(stdout, "occupied seats (%s): %d\n", rule, res.Occupied())
	}
	return nil
}
