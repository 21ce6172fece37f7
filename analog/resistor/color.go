package resistor

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-analog/analog"
)

// ColorBand is one of the twelve band colors. Black through White carry the
// digits 0-9 and the multiplier exponents 0-9; Gold and Silver are
// multiplier-only with exponents -1 and -2.
type ColorBand int

const (
	Black ColorBand = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Gray
	White
	Gold
	Silver
)

const (
	minExponent = -2
	maxExponent = 9
)

var colorNames = [...]string{
	Black:  "black",
	Brown:  "brown",
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Violet: "violet",
	Gray:   "gray",
	White:  "white",
	Gold:   "gold",
	Silver: "silver",
}

var colorsByName = func() map[string]ColorBand {
	m := make(map[string]ColorBand, len(colorNames)+1)
	for i, name := range colorNames {
		m[name] = ColorBand(i)
	}
	m["grey"] = Gray
	return m
}()

// Colors returns all band colors in digit order followed by Gold and Silver.
func Colors() []ColorBand {
	out := make([]ColorBand, len(colorNames))
	for i := range out {
		out[i] = ColorBand(i)
	}
	return out
}

// ParseColor looks up a color by name, ignoring case and surrounding space.
// Both "gray" and "grey" are accepted.
func ParseColor(name string) (ColorBand, error) {
	c, ok := colorsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("resistor: unknown color %q: %w", name, analog.ErrInvalidColorBand)
	}
	return c, nil
}

// String returns the lower-case color name.
func (c ColorBand) String() string {
	if c >= 0 && int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("ColorBand(%d)", int(c))
}

// IsDigit reports whether c may appear in a significant-digit band.
func (c ColorBand) IsDigit() bool { return c >= Black && c <= White }

// IsMultiplier reports whether c may appear in the multiplier band.
func (c ColorBand) IsMultiplier() bool { return c >= Black && c <= Silver }

// Digit returns the digit value of c.
func (c ColorBand) Digit() (int, error) {
	if !c.IsDigit() {
		return 0, fmt.Errorf("resistor: %v is not a digit band: %w", c, analog.ErrInvalidColorBand)
	}
	return int(c), nil
}

// Exponent returns the power of ten c stands for in the multiplier band.
func (c ColorBand) Exponent() (int, error) {
	switch {
	case c == Gold:
		return -1, nil
	case c == Silver:
		return -2, nil
	case c.IsDigit():
		return int(c), nil
	default:
		return 0, fmt.Errorf("resistor: %v is not a multiplier band: %w", c, analog.ErrInvalidColorBand)
	}
}

func digitColor(d int) ColorBand { return ColorBand(d) }

func exponentColor(e int) ColorBand {
	switch e {
	case -1:
		return Gold
	case -2:
		return Silver
	default:
		return ColorBand(e)
	}
}
