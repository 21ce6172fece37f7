// Command analogcalc is an interactive calculator for resistor color codes,
// standard values, op-amp gain and RC/Sallen-Key filter sizing.
//
// Settings come from ANALOG_* environment variables (see internal/config);
// flags override them.
//
// Usage:
//
//	analogcalc [flags]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-analog/internal/config"
	"github.com/cwbudde/algo-analog/internal/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	noClear := flag.Bool("no-clear", !cfg.Shell.ClearScreen, "do not clear the screen before the main menu")
	attempts := flag.Int("attempts", cfg.Shell.MaxAttempts, "invalid answers allowed per prompt (0 = unlimited)")
	precision := flag.Int("precision", cfg.Shell.Precision, "significant digits of printed values")
	verbose := flag.Bool("v", false, "log every computation at debug level")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: analogcalc [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Interactive analog electronics calculator.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  ANALOG_LOG_LEVEL, ANALOG_LOG_FORMAT, ANALOG_CLEAR_SCREEN,\n")
		fmt.Fprintf(os.Stderr, "  ANALOG_MAX_ATTEMPTS, ANALOG_PRECISION\n")
	}
	flag.Parse()

	if *verbose {
		cfg.Log.Level = zerolog.DebugLevel
	}
	log := cfg.Log.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := shell.New(os.Stdin, os.Stdout,
		shell.WithLogger(log),
		shell.WithClearScreen(!*noClear),
		shell.WithMaxAttempts(*attempts),
		shell.WithPrecision(*precision),
	)

	// Reads from stdin block, so the signal is observed here rather than
	// inside the shell.
	errc := make(chan error, 1)
	go func() { errc <- sh.Run(ctx) }()

	select {
	case err = <-errc:
	case <-ctx.Done():
		err = ctx.Err()
	}

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stdout)
	case errors.Is(err, shell.ErrTooManyAttempts):
		log.Error().Err(err).Msg("giving up")
		os.Exit(1)
	default:
		log.Error().Err(err).Msg("shell failed")
		os.Exit(1)
	}
}
