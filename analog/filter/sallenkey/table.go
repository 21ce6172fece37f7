package sallenkey

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-analog/analog/filter/rc"
)

// ErrInvalidPoleCount reports a pole count other than 2, 4 or 6.
var ErrInvalidPoleCount = errors.New("pole count must be 2, 4 or 6")

// Topology is the approximation family.
type Topology int

const (
	Butterworth Topology = iota
	Chebyshev05dB
	Chebyshev2dB
)

// String returns a human-readable topology name.
func (t Topology) String() string {
	switch t {
	case Butterworth:
		return "Butterworth"
	case Chebyshev05dB:
		return "0.5 dB Chebyshev"
	case Chebyshev2dB:
		return "2 dB Chebyshev"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// RippleDB returns the passband ripple of the family in dB.
func (t Topology) RippleDB() float64 {
	switch t {
	case Chebyshev05dB:
		return 0.5
	case Chebyshev2dB:
		return 2
	default:
		return 0
	}
}

// Pass aliases the RC pass type so both packages share LowPass/HighPass.
type Pass = rc.Pass

const (
	LowPass  = rc.LowPass
	HighPass = rc.HighPass
)

// PoleFactor is the tabulated data of one stage.
type PoleFactor struct {
	// Gain is the stage gain K = 1 + RA/RB.
	Gain float64
	// LowFactor divides 1/(2πRC) to give the low-pass cutoff.
	LowFactor float64
	// HighFactor divides 1/(2πRC) to give the high-pass cutoff.
	HighFactor float64
}

// FilterSpec is a read-only description of one table entry.
type FilterSpec struct {
	Topology Topology
	Poles    int
	Pass     Pass
	factors  []PoleFactor
}

// PolePairs returns the number of second-order stages.
func (s FilterSpec) PolePairs() int { return len(s.factors) }

// Factors returns a copy of the per-stage table rows.
func (s FilterSpec) Factors() []PoleFactor {
	return append([]PoleFactor(nil), s.factors...)
}

// Stage returns the table row for stage index (0-based) and the frequency
// factor selected by the pass type.
func (s FilterSpec) Stage(index int) (PoleFactor, float64, error) {
	if index < 0 || index >= len(s.factors) {
		return PoleFactor{}, 0, fmt.Errorf("sallenkey: stage %d out of range [0,%d)", index, len(s.factors))
	}
	pf := s.factors[index]
	if s.Pass == HighPass {
		return pf, pf.HighFactor, nil
	}
	return pf, pf.LowFactor, nil
}

var butterworthTable = map[int][]PoleFactor{
	2: {{1.586, 1, 1}},
	4: {{1.152, 1, 1}, {2.235, 1, 1}},
	6: {{1.068, 1, 1}, {1.586, 1, 1}, {2.483, 1, 1}},
}

var chebyshev05Table = map[int][]PoleFactor{
	2: {{1.842, 1.231, 0.812}},
	4: {{1.582, 0.597, 1.675}, {2.660, 1.031, 0.970}},
	6: {{1.537, 0.396, 2.525}, {2.448, 0.768, 1.302}, {2.846, 1.011, 0.989}},
}

var chebyshev2Table = map[int][]PoleFactor{
	2: {{2.114, 0.907, 1.103}},
	4: {{1.924, 0.471, 2.123}, {2.782, 0.964, 1.037}},
	6: {{1.891, 0.316, 3.165}, {2.648, 0.730, 1.370}, {2.904, 0.983, 1.017}},
}

// Lookup returns the table entry for (t, poles) with the given pass type.
func Lookup(t Topology, poles int, pass Pass) (FilterSpec, error) {
	var table map[int][]PoleFactor
	switch t {
	case Butterworth:
		table = butterworthTable
	case Chebyshev05dB:
		table = chebyshev05Table
	case Chebyshev2dB:
		table = chebyshev2Table
	default:
		return FilterSpec{}, fmt.Errorf("sallenkey: unknown topology %v", t)
	}
	if pass != LowPass && pass != HighPass {
		return FilterSpec{}, fmt.Errorf("sallenkey: unknown pass %v", pass)
	}
	factors, ok := table[poles]
	if !ok {
		return FilterSpec{}, fmt.Errorf("sallenkey: %d poles: %w", poles, ErrInvalidPoleCount)
	}
	return FilterSpec{Topology: t, Poles: poles, Pass: pass, factors: factors}, nil
}
