// Package shell is the interactive text front end of the calculator. It
// reads one answer per line, re-prompts on malformed input and prints
// results, delegating every computation to the analog packages.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-analog/analog/resistor"
	"github.com/cwbudde/algo-analog/analog/units"
)

// ErrTooManyAttempts is returned by [Shell.Run] when a prompt was answered
// wrongly more often than the configured limit.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

const clearSequence = "\033[H\033[2J"

// Config holds shell settings.
type Config struct {
	Logger      zerolog.Logger
	ClearScreen bool
	MaxAttempts int // 0 means unlimited
	Precision   int // significant digits in printed values
	Series      resistor.Series
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		Logger:    zerolog.Nop(),
		Precision: 4,
		Series:    resistor.E12(),
	}
}

// WithLogger sets the logger for rejected input and computations.
func WithLogger(log zerolog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = log }
}

// WithClearScreen enables the ANSI clear sequence before the main menu.
func WithClearScreen(enabled bool) Option {
	return func(cfg *Config) { cfg.ClearScreen = enabled }
}

// WithMaxAttempts limits consecutive invalid answers per prompt. Zero
// removes the limit; negative values are ignored.
func WithMaxAttempts(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.MaxAttempts = n
		}
	}
}

// WithPrecision sets the significant digits of printed values (1..15).
func WithPrecision(digits int) Option {
	return func(cfg *Config) {
		if digits >= 1 && digits <= 15 {
			cfg.Precision = digits
		}
	}
}

// WithSeries replaces the standard resistor series.
func WithSeries(s resistor.Series) Option {
	return func(cfg *Config) {
		if s.Len() > 0 {
			cfg.Series = s
		}
	}
}

// Shell runs the menu loop over a line-oriented input.
type Shell struct {
	cfg Config
	log zerolog.Logger
	in  *bufio.Scanner
	out io.Writer
}

// New returns a shell reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Shell{
		cfg: cfg,
		log: cfg.Logger.With().Str("component", "shell").Logger(),
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run shows the main menu until the user quits, the input ends or ctx is
// done. End of input is a normal exit and returns nil.
func (s *Shell) Run(ctx context.Context) error {
	err := s.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		s.printf("\n")
		return nil
	}
	return err
}

func (s *Shell) mainMenu(ctx context.Context) error {
	for {
		if s.cfg.ClearScreen {
			s.printf(clearSequence)
		}
		choice, err := s.menu(ctx, "Analog Electronics Calculator",
			"Resistor calculator",
			"Op-amp calculator",
			"RC filter calculator",
			"Sallen-Key filter designer",
			"Quit",
		)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.resistorMenu(ctx)
		case 2:
			err = s.opampMenu(ctx)
		case 3:
			err = s.filterMenu(ctx)
		case 4:
			err = s.sallenKeyMenu(ctx)
		case 5:
			s.printf("Goodbye.\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) format(v float64, d units.Dimension) string {
	return units.Format(v, d, s.cfg.Precision)
}

// report prints a computation failure and keeps the shell running.
func (s *Shell) report(op string, err error) {
	s.log.Warn().Err(err).Str("op", op).Msg("computation failed")
	s.printf("Error: %v\n", err)
}

func heading(title string) string {
	return "\n--- " + title + " ---\n"
}

func numbered(options []string) string {
	var b strings.Builder
	for i, o := range options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o)
	}
	return b.String()
}
