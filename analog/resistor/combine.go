package resistor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/algo-analog/analog"
)

// Connection says how two resistances are joined.
type Connection int

const (
	InSeries Connection = iota
	InParallel
)

// String returns "series" or "parallel".
func (c Connection) String() string {
	switch c {
	case InSeries:
		return "series"
	case InParallel:
		return "parallel"
	default:
		return "Connection(" + strconv.Itoa(int(c)) + ")"
	}
}

// Combination is a pair of series members joined in series or parallel.
type Combination struct {
	Connection Connection
	R1, R2     float64
}

// Value returns the equivalent resistance of the pair.
func (c Combination) Value() float64 {
	if c.Connection == InParallel {
		return 1 / (1/c.R1 + 1/c.R2)
	}
	return c.R1 + c.R2
}

// String renders the pair as "Series: 470 ohms + 330 ohms" or
// "Parallel: 2200 ohms || 2200 ohms".
func (c Combination) String() string {
	r1 := strconv.FormatFloat(c.R1, 'g', -1, 64)
	r2 := strconv.FormatFloat(c.R2, 'g', -1, 64)
	if c.Connection == InParallel {
		return "Parallel: " + r1 + " ohms || " + r2 + " ohms"
	}
	return "Series: " + r1 + " ohms + " + r2 + " ohms"
}

// SuggestCombinations lists every ordered pair (r1, r2) of members whose
// series or parallel value lies strictly within tolerance of target. All
// n*n pairs are visited in ascending outer/inner order; for each pair the
// series check comes before the parallel one.
//
// Passing the Difference of [Series.Nearest] as tolerance reports only pairs
// that beat the best single resistor, so an exact match yields none.
func (s Series) SuggestCombinations(target, tolerance float64) ([]Combination, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	if math.IsNaN(tolerance) {
		return nil, fmt.Errorf("resistor: tolerance %v: %w", tolerance, analog.ErrNonFinite)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("resistor: tolerance %v must be >= 0: %w", tolerance, analog.ErrNonPositiveInput)
	}

	var out []Combination
	for _, r1 := range s.values {
		for _, r2 := range s.values {
			if math.Abs((r1+r2)-target) < tolerance {
				out = append(out, Combination{Connection: InSeries, R1: r1, R2: r2})
			}
			if math.Abs(1/(1/r1+1/r2)-target) < tolerance {
				out = append(out, Combination{Connection: InParallel, R1: r1, R2: r2})
			}
		}
	}
	return out, nil
}

// SuggestCombinations runs the pair search against the E12 series.
func SuggestCombinations(target, tolerance float64) ([]Combination, error) {
	return e12.SuggestCombinations(target, tolerance)
}

// Approximate resolves target to its nearest member and, when the match is
// not exact, the pairs that improve on it.
func (s Series) Approximate(target float64) (Match, []Combination, error) {
	m, err := s.Nearest(target)
	if err != nil {
		return Match{}, nil, err
	}
	if m.Exact() {
		return m, nil, nil
	}
	combos, err := s.SuggestCombinations(target, m.Difference)
	if err != nil {
		return Match{}, nil, err
	}
	return m, combos, nil
}
