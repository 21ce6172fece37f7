package resistor

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/analog"
)

// e12 is the standard series from 1 Ω to 10 MΩ. Values are literal so every
// member is exactly the decimal number printed on the part.
var e12 = Series{values: []float64{
	1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2,
	10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82,
	100, 120, 150, 180, 220, 270, 330, 390, 470, 560, 680, 820,
	1000, 1200, 1500, 1800, 2200, 2700, 3300, 3900, 4700, 5600, 6800, 8200,
	10000, 12000, 15000, 18000, 22000, 27000, 33000, 39000, 47000, 56000, 68000, 82000,
	100000, 120000, 150000, 180000, 220000, 270000, 330000, 390000, 470000, 560000, 680000, 820000,
	1000000, 1200000, 1500000, 1800000, 2200000, 2700000, 3300000, 3900000, 4700000, 5600000, 6800000, 8200000,
	10000000,
}}

// Series is an immutable ascending list of positive resistances.
type Series struct {
	values []float64
}

// E12 returns the standard 85-value series (1 Ω to 10 MΩ).
func E12() Series { return e12 }

// NewSeries validates values (finite, > 0, strictly ascending) and returns a
// Series holding a private copy.
func NewSeries(values []float64) (Series, error) {
	if len(values) == 0 {
		return Series{}, fmt.Errorf("resistor: series: %w", analog.ErrEmptyInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Series{}, fmt.Errorf("resistor: series[%d] = %v: %w", i, v, analog.ErrNonFinite)
		}
		if v <= 0 {
			return Series{}, fmt.Errorf("resistor: series[%d] = %v: %w", i, v, analog.ErrNonPositiveInput)
		}
		if i > 0 && v <= values[i-1] {
			return Series{}, fmt.Errorf("resistor: series not strictly ascending at index %d (%v after %v)", i, v, values[i-1])
		}
	}
	return Series{values: append([]float64(nil), values...)}, nil
}

// Len returns the number of members.
func (s Series) Len() int { return len(s.values) }

// At returns the i-th member in ascending order.
func (s Series) At(i int) float64 { return s.values[i] }

// Values returns a copy of the members.
func (s Series) Values() []float64 { return append([]float64(nil), s.values...) }

// Contains reports whether v is exactly a member.
func (s Series) Contains(v float64) bool {
	for _, x := range s.values {
		if x == v {
			return true
		}
	}
	return false
}
