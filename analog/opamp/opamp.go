// Package opamp computes the closed-loop gain and output voltage of the two
// basic single op-amp amplifier configurations.
package opamp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/analog"
)

// Configuration selects the amplifier topology.
type Configuration int

const (
	Inverting Configuration = iota
	NonInverting
)

// String returns the configuration name.
func (c Configuration) String() string {
	switch c {
	case Inverting:
		return "inverting"
	case NonInverting:
		return "non-inverting"
	default:
		return fmt.Sprintf("Configuration(%d)", int(c))
	}
}

// InvertingGain returns -rFeedback / rInput.
func InvertingGain(rFeedback, rInput float64) (float64, error) {
	if err := validateResistors(rFeedback, rInput); err != nil {
		return 0, err
	}
	return -rFeedback / rInput, nil
}

// NonInvertingGain returns 1 + rFeedback / rGround.
func NonInvertingGain(rFeedback, rGround float64) (float64, error) {
	if err := validateResistors(rFeedback, rGround); err != nil {
		return 0, err
	}
	return 1 + rFeedback/rGround, nil
}

// Output returns gain * vin. Ideal op-amp: no rail clipping.
func Output(gain, vin float64) float64 { return gain * vin }

// Amplifier is a configured op-amp stage.
type Amplifier struct {
	Config Configuration
	// Feedback is the resistor from output to the inverting input.
	Feedback float64
	// Input is the input resistor (inverting) or the ground resistor
	// (non-inverting).
	Input float64
}

// Gain returns the closed-loop gain of a.
func (a Amplifier) Gain() (float64, error) {
	switch a.Config {
	case Inverting:
		return InvertingGain(a.Feedback, a.Input)
	case NonInverting:
		return NonInvertingGain(a.Feedback, a.Input)
	default:
		return 0, fmt.Errorf("opamp: unknown configuration %v", a.Config)
	}
}

// Output returns the gain and the output voltage for input vin.
func (a Amplifier) Output(vin float64) (gain, vout float64, err error) {
	if math.IsNaN(vin) || math.IsInf(vin, 0) {
		return 0, 0, fmt.Errorf("opamp: input voltage %v: %w", vin, analog.ErrNonFinite)
	}
	gain, err = a.Gain()
	if err != nil {
		return 0, 0, err
	}
	return gain, Output(gain, vin), nil
}

func validateResistors(rFeedback, rOther float64) error {
	for _, r := range [...]float64{rFeedback, rOther} {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("opamp: resistor %v: %w", r, analog.ErrNonFinite)
		}
	}
	if rOther == 0 {
		return fmt.Errorf("opamp: denominator resistor is 0: %w", analog.ErrDivisionByZero)
	}
	if rFeedback <= 0 || rOther < 0 {
		return fmt.Errorf("opamp: resistors %v, %v: %w", rFeedback, rOther, analog.ErrNonPositiveInput)
	}
	return nil
}
