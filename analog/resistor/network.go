package resistor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-analog/analog"
)

// SeriesResistance returns the sum of values. Zero-ohm links are allowed;
// negative values are not.
func SeriesResistance(values []float64) (float64, error) {
	if err := validateNetwork(values, false); err != nil {
		return 0, err
	}
	sum := floats.Sum(values)
	if math.IsInf(sum, 0) {
		return 0, fmt.Errorf("resistor: series sum overflows: %w", analog.ErrNonFinite)
	}
	return sum, nil
}

// ParallelResistance returns the reciprocal of the sum of reciprocals.
// A zero value reports [analog.ErrDivisionByZero].
func ParallelResistance(values []float64) (float64, error) {
	if err := validateNetwork(values, true); err != nil {
		return 0, err
	}
	var inv float64
	for _, v := range values {
		inv += 1 / v
	}
	return invert(inv)
}

// invert returns 1/inv for a sum of reciprocals. An overflowed sum comes from
// a value too small to divide by and reports [analog.ErrDivisionByZero].
func invert(inv float64) (float64, error) {
	if math.IsInf(inv, 0) {
		return 0, fmt.Errorf("resistor: reciprocal overflows: %w", analog.ErrDivisionByZero)
	}
	return 1 / inv, nil
}

// CombineNetwork reduces a group of series resistors and a group of parallel
// resistors to one value each, then joins the two totals with conn.
func CombineNetwork(seriesGroup, parallelGroup []float64, conn Connection) (float64, error) {
	rs, err := SeriesResistance(seriesGroup)
	if err != nil {
		return 0, fmt.Errorf("series group: %w", err)
	}
	rp, err := ParallelResistance(parallelGroup)
	if err != nil {
		return 0, fmt.Errorf("parallel group: %w", err)
	}

	switch conn {
	case InSeries:
		if math.IsInf(rs+rp, 0) {
			return 0, fmt.Errorf("resistor: combined sum overflows: %w", analog.ErrNonFinite)
		}
		return rs + rp, nil
	case InParallel:
		if rs == 0 {
			return 0, fmt.Errorf("resistor: series total is 0: %w", analog.ErrDivisionByZero)
		}
		return invert(1/rs + 1/rp)
	default:
		return 0, fmt.Errorf("resistor: unknown connection %v", conn)
	}
}

func validateNetwork(values []float64, parallel bool) error {
	if len(values) == 0 {
		return fmt.Errorf("resistor: network: %w", analog.ErrEmptyInput)
	}
	for i, v := range values {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return fmt.Errorf("resistor: value[%d] = %v: %w", i, v, analog.ErrNonFinite)
		case v < 0:
			return fmt.Errorf("resistor: value[%d] = %v: %w", i, v, analog.ErrNonPositiveInput)
		case v == 0 && parallel:
			return fmt.Errorf("resistor: value[%d] is 0 in parallel: %w", i, analog.ErrDivisionByZero)
		}
	}
	return nil
}
