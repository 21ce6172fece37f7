package resistor

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/analog"
)

// Match is the result of a nearest-value lookup.
type Match struct {
	// Value is the selected series member.
	Value float64
	// Difference is |target - Value|.
	Difference float64
}

// Exact reports whether the target was itself a series member.
func (m Match) Exact() bool { return m.Difference == 0 }

// Nearest returns the member minimizing |target - v|. Ties go to the first
// member in ascending order. Targets outside the series range resolve to the
// nearest endpoint.
func (s Series) Nearest(target float64) (Match, error) {
	if err := validateTarget(target); err != nil {
		return Match{}, err
	}
	if len(s.values) == 0 {
		return Match{}, fmt.Errorf("resistor: nearest: %w", analog.ErrEmptyInput)
	}

	best := Match{Value: s.values[0], Difference: math.Abs(target - s.values[0])}
	for _, v := range s.values[1:] {
		if d := math.Abs(target - v); d < best.Difference {
			best = Match{Value: v, Difference: d}
		}
	}
	return best, nil
}

// Nearest resolves target against the E12 series.
func Nearest(target float64) (Match, error) {
	return e12.Nearest(target)
}

func validateTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return fmt.Errorf("resistor: target %v: %w", target, analog.ErrNonFinite)
	}
	if target <= 0 {
		return fmt.Errorf("resistor: target %v: %w", target, analog.ErrNonPositiveInput)
	}
	return nil
}
