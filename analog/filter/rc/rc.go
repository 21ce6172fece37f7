// Package rc sizes first-order RC low-pass and high-pass filters.
//
// Both pass types share fc = 1 / (2π R C); they differ only in which
// component sits in the series path.
package rc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/analog"
)

// Pass selects which band the filter passes.
type Pass int

const (
	LowPass Pass = iota
	HighPass
)

// String returns "low" or "high".
func (p Pass) String() string {
	switch p {
	case LowPass:
		return "low"
	case HighPass:
		return "high"
	default:
		return fmt.Sprintf("Pass(%d)", int(p))
	}
}

// CutoffFrequency returns 1 / (2π r c) in hertz.
func CutoffFrequency(r, c float64) (float64, error) {
	return CutoffFrequencyScaled(r, c, 1)
}

// CutoffFrequencyScaled returns 1 / (2π r c factor). The factor is the
// per-stage frequency factor of a cascaded active filter; plain RC stages
// use 1.
func CutoffFrequencyScaled(r, c, factor float64) (float64, error) {
	if err := validateOperands("cutoff frequency", r, c, factor); err != nil {
		return 0, err
	}
	return reciprocal("cutoff frequency", r*c*2*math.Pi*factor)
}

// RequiredResistance returns the R that puts the cutoff of an RC stage with
// capacitance c at frequency f.
func RequiredResistance(c, f float64) (float64, error) {
	if err := validateOperands("required resistance", c, f); err != nil {
		return 0, err
	}
	return reciprocal("required resistance", 2*math.Pi*c*f)
}

// RequiredCapacitance returns the C that puts the cutoff of an RC stage with
// resistance r at frequency f.
func RequiredCapacitance(r, f float64) (float64, error) {
	if err := validateOperands("required capacitance", r, f); err != nil {
		return 0, err
	}
	return reciprocal("required capacitance", 2*math.Pi*r*f)
}

// Filter is a first-order RC stage.
type Filter struct {
	Pass Pass
	R, C float64
}

// Cutoff returns the -3 dB frequency of f.
func (f Filter) Cutoff() (float64, error) {
	return CutoffFrequency(f.R, f.C)
}

// Response returns the complex transfer function at freq hertz:
// 1/(1+jωRC) for low-pass and jωRC/(1+jωRC) for high-pass.
func (f Filter) Response(freq float64) complex128 {
	x := complex(0, 2*math.Pi*freq*f.R*f.C)
	if f.Pass == HighPass {
		return x / (1 + x)
	}
	return 1 / (1 + x)
}

// reciprocal returns 1/denom. A denominator that underflowed to 0, or one so
// small that the result overflows, reports [analog.ErrDivisionByZero].
func reciprocal(op string, denom float64) (float64, error) {
	v := 1 / denom
	if denom == 0 || math.IsInf(v, 0) {
		return 0, fmt.Errorf("rc: %s: denominator %v: %w", op, denom, analog.ErrDivisionByZero)
	}
	return v, nil
}

func validateOperands(op string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("rc: %s: operand %v: %w", op, v, analog.ErrNonFinite)
		}
	}
	for _, v := range values {
		if v == 0 {
			return fmt.Errorf("rc: %s: zero operand: %w", op, analog.ErrDivisionByZero)
		}
	}
	for _, v := range values {
		if v < 0 {
			return fmt.Errorf("rc: %s: operand %v: %w", op, v, analog.ErrNonPositiveInput)
		}
	}
	return nil
}
