package sallenkey

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/analog"
)

// ComponentValue returns RA = RB * (gain - 1), the feedback resistor that
// sets the stage gain. gain must exceed 1.
func ComponentValue(gain, rb float64) (float64, error) {
	if math.IsNaN(gain) || math.IsInf(gain, 0) || math.IsNaN(rb) || math.IsInf(rb, 0) {
		return 0, fmt.Errorf("sallenkey: gain %v, rb %v: %w", gain, rb, analog.ErrNonFinite)
	}
	if gain <= 1 {
		return 0, fmt.Errorf("sallenkey: gain %v must be > 1: %w", gain, analog.ErrInvalidGain)
	}
	if rb <= 0 {
		return 0, fmt.Errorf("sallenkey: rb %v: %w", rb, analog.ErrNonPositiveInput)
	}
	ra := rb * (gain - 1)
	if math.IsInf(ra, 0) {
		return 0, fmt.Errorf("sallenkey: ra overflows for gain %v, rb %v: %w", gain, rb, analog.ErrNonFinite)
	}
	return ra, nil
}

// Quality returns Q = 1/(3 - gain) of an equal-component stage. A gain of 3
// or more puts the poles on or right of the imaginary axis.
func Quality(gain float64) (float64, error) {
	if gain <= 1 || gain >= 3 {
		return 0, fmt.Errorf("sallenkey: gain %v outside (1, 3): %w", gain, analog.ErrInvalidGain)
	}
	return 1 / (3 - gain), nil
}
