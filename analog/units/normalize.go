package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-analog/analog"
)

// Measurement is a magnitude in the SI base unit of its dimension.
type Measurement struct {
	Magnitude float64
	Dimension Dimension
}

// String formats the measurement with a display prefix.
func (m Measurement) String() string {
	return Format(m.Magnitude, m.Dimension, -1)
}

// ParsePrefix looks up a single-letter unit suffix for d.
func ParsePrefix(suffix string, d Dimension) (Prefix, error) {
	table, ok := suffixes[d]
	if !ok {
		return PrefixNone, fmt.Errorf("units: unknown dimension %v: %w", d, analog.ErrInvalidUnit)
	}
	p, ok := table[strings.ToLower(strings.TrimSpace(suffix))]
	if !ok {
		return PrefixNone, fmt.Errorf("units: suffix %q for %v (want one of %s): %w",
			suffix, d, strings.Join(Suffixes(d), ", "), analog.ErrInvalidUnit)
	}
	return p, nil
}

// Normalize multiplies raw by the factor of suffix and tags the result with d.
//
// raw must be finite, and > 0 for every dimension except [Voltage]. The
// scaled magnitude must stay finite and non-zero.
func Normalize(raw float64, suffix string, d Dimension) (Measurement, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Measurement{}, fmt.Errorf("units: %v magnitude %v: %w", d, raw, analog.ErrNonFinite)
	}
	if !d.Signed() && raw <= 0 {
		return Measurement{}, fmt.Errorf("units: %v magnitude %v: %w", d, raw, analog.ErrNonPositiveInput)
	}
	p, err := ParsePrefix(suffix, d)
	if err != nil {
		return Measurement{}, err
	}
	v := raw * p.Factor()
	switch {
	case math.IsInf(v, 0):
		return Measurement{}, fmt.Errorf("units: %v%s overflows: %w", raw, suffix, analog.ErrNonFinite)
	case v == 0 && raw != 0:
		return Measurement{}, fmt.Errorf("units: %v%s underflows to 0: %w", raw, suffix, analog.ErrNonPositiveInput)
	}
	return Measurement{Magnitude: v, Dimension: d}, nil
}

// baseSuffix is the suffix assumed by Parse when the text carries none.
var baseSuffix = map[Dimension]string{
	Resistance: "o",
	Frequency:  "h",
	Voltage:    "v",
}

// Parse splits text such as "4.7k", "100 n" or "-0.5" into magnitude and
// suffix and normalizes it. A missing suffix selects the base unit for
// resistance, frequency and voltage; capacitance always needs one.
func Parse(text string, d Dimension) (Measurement, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Measurement{}, fmt.Errorf("units: empty %v: %w", d, analog.ErrEmptyInput)
	}

	end := len(s)
	for end > 0 && !isNumberTail(s[end-1]) {
		end--
	}
	num := strings.TrimSpace(s[:end])
	suffix := strings.TrimSpace(s[end:])

	raw, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Measurement{}, fmt.Errorf("units: %q is not a number: %w", num, ErrSyntax)
	}

	if suffix == "" {
		base, ok := baseSuffix[d]
		if !ok {
			return Measurement{}, fmt.Errorf("units: %v needs a suffix (one of %s): %w",
				d, strings.Join(Suffixes(d), ", "), analog.ErrInvalidUnit)
		}
		suffix = base
	}
	return Normalize(raw, suffix, d)
}

func isNumberTail(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}
