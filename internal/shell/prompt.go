package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-analog/analog/resistor"
	"github.com/cwbudde/algo-analog/analog/units"
)

// readLine prints prompt and returns the next trimmed input line.
func (s *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("shell: read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ask re-prompts until parse accepts the answer or the attempt limit is hit.
func ask[T any](ctx context.Context, s *Shell, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		s.log.Warn().Err(err).Str("input", line).Int("attempt", attempt).Msg("rejected input")
		s.printf("Invalid input: %v\n", err)
		if s.cfg.MaxAttempts > 0 && attempt >= s.cfg.MaxAttempts {
			return zero, fmt.Errorf("shell: %q after %d attempts: %w",
				strings.TrimSpace(strings.TrimSuffix(prompt, ": ")), attempt, ErrTooManyAttempts)
		}
	}
}

// menu prints a numbered menu and returns the 1-based choice.
func (s *Shell) menu(ctx context.Context, title string, options ...string) (int, error) {
	s.printf("%s%s", heading(title), numbered(options))
	return ask(ctx, s, "Select an option: ", choiceParser(len(options)))
}

func choiceParser(n int) func(string) (int, error) {
	return func(text string) (int, error) {
		return intInRange(text, 1, n)
	}
}

func intInRange(text string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("enter a whole number between %d and %d", lo, hi)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%d is not between %d and %d", v, lo, hi)
	}
	return v, nil
}

func (s *Shell) askValue(ctx context.Context, label string, d units.Dimension) (float64, error) {
	prompt := fmt.Sprintf("%s (%s): ", label, unitHint(d))
	m, err := ask(ctx, s, prompt, func(text string) (units.Measurement, error) {
		return units.Parse(text, d)
	})
	return m.Magnitude, err
}

func unitHint(d units.Dimension) string {
	switch d {
	case units.Resistance:
		return "e.g. 4.7k; o, k, M"
	case units.Capacitance:
		return "e.g. 100n; u, n, p"
	case units.Frequency:
		return "e.g. 1.5k; h, k, M"
	default:
		return "volts"
	}
}

func (s *Shell) askCount(ctx context.Context, prompt string, lo, hi int) (int, error) {
	return ask(ctx, s, prompt, func(text string) (int, error) {
		return intInRange(text, lo, hi)
	})
}

func (s *Shell) askDigitBand(ctx context.Context, prompt string) (resistor.ColorBand, error) {
	return ask(ctx, s, prompt, func(text string) (resistor.ColorBand, error) {
		c, err := resistor.ParseColor(text)
		if err != nil {
			return c, err
		}
		if _, err := c.Digit(); err != nil {
			return c, err
		}
		return c, nil
	})
}

func (s *Shell) askMultiplierBand(ctx context.Context, prompt string) (resistor.ColorBand, error) {
	return ask(ctx, s, prompt, func(text string) (resistor.ColorBand, error) {
		c, err := resistor.ParseColor(text)
		if err != nil {
			return c, err
		}
		if _, err := c.Exponent(); err != nil {
			return c, err
		}
		return c, nil
	})
}

func (s *Shell) askWord(ctx context.Context, prompt string, words ...string) (string, error) {
	return ask(ctx, s, prompt, func(text string) (string, error) {
		w := strings.ToLower(text)
		for _, want := range words {
			if w == want {
				return w, nil
			}
		}
		return "", fmt.Errorf("enter one of %s", strings.Join(words, ", "))
	})
}
