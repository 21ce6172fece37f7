package resistor

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/analog"
)

// digitEpsilon absorbs the representation error of values like 8.2 whose
// binary mantissa sits just below the decimal digit.
const digitEpsilon = 1e-9

// Bands is a 3-band color code: two significant digits and a multiplier.
type Bands struct {
	First, Second, Multiplier ColorBand
}

// String renders the code as "[brown, black, red]".
func (b Bands) String() string {
	return "[" + b.First.String() + ", " + b.Second.String() + ", " + b.Multiplier.String() + "]"
}

// Decode returns (10*digit(first) + digit(second)) * 10^exponent(multiplier)
// in ohms.
func Decode(first, second, multiplier ColorBand) (float64, error) {
	d1, err := first.Digit()
	if err != nil {
		return 0, fmt.Errorf("first band: %w", err)
	}
	d2, err := second.Digit()
	if err != nil {
		return 0, fmt.Errorf("second band: %w", err)
	}
	exp, err := multiplier.Exponent()
	if err != nil {
		return 0, fmt.Errorf("multiplier band: %w", err)
	}

	significant := float64(d1*10 + d2)
	if exp < 0 {
		return significant / math.Pow10(-exp), nil
	}
	return significant * math.Pow10(exp), nil
}

// Decode is a convenience for [Decode] on the receiver's bands.
func (b Bands) Decode() (float64, error) {
	return Decode(b.First, b.Second, b.Multiplier)
}

// Encode decomposes resistance into two truncated significant digits and a
// multiplier band. Resistances below 0.1 Ω or at and above 100 GΩ have no
// multiplier color and report [analog.ErrUnrepresentableValue].
func Encode(resistance float64) (Bands, error) {
	if math.IsNaN(resistance) || math.IsInf(resistance, 0) {
		return Bands{}, fmt.Errorf("resistor: encode %v: %w", resistance, analog.ErrNonFinite)
	}
	if resistance <= 0 {
		return Bands{}, fmt.Errorf("resistor: encode %v: %w", resistance, analog.ErrNonPositiveInput)
	}

	magnitude := int(math.Floor(math.Log10(resistance)))
	normalized := resistance / math.Pow10(magnitude)
	// Log10 of an exact power of ten may land on either side of the integer.
	if normalized >= 10 {
		normalized /= 10
		magnitude++
	} else if normalized < 1 {
		normalized *= 10
		magnitude--
	}

	significant := int(math.Floor(normalized*10 + digitEpsilon))
	if significant >= 100 {
		significant /= 10
		magnitude++
	}

	exp := magnitude - 1
	if exp < minExponent || exp > maxExponent {
		return Bands{}, fmt.Errorf("resistor: encode %v: multiplier 10^%d: %w",
			resistance, exp, analog.ErrUnrepresentableValue)
	}

	return Bands{
		First:      digitColor(significant / 10),
		Second:     digitColor(significant % 10),
		Multiplier: exponentColor(exp),
	}, nil
}

// Code is a resistance resolved to a standard part and its color code.
type Code struct {
	Target float64
	Match
	Bands Bands
}

// StandardCode snaps resistance to the nearest E12 member and encodes it.
func StandardCode(resistance float64) (Code, error) {
	return e12.StandardCode(resistance)
}

// StandardCode snaps resistance to the nearest member of s and encodes it.
func (s Series) StandardCode(resistance float64) (Code, error) {
	m, err := s.Nearest(resistance)
	if err != nil {
		return Code{}, err
	}
	bands, err := Encode(m.Value)
	if err != nil {
		return Code{}, err
	}
	return Code{Target: resistance, Match: m, Bands: bands}, nil
}
