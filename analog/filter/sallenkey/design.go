package sallenkey

import (
	"fmt"

	"github.com/cwbudde/algo-analog/analog/filter/rc"
)

// StageInput holds the user-chosen parts of one stage.
type StageInput struct {
	R  float64 // R1 = R2, ohms
	C  float64 // C1 = C2, farads
	RB float64 // gain-setting resistor to ground, ohms
}

// ImpedanceKind says whether a Z position holds a resistor or a capacitor.
type ImpedanceKind int

const (
	Resistor ImpedanceKind = iota
	Capacitor
)

// Impedance is one of the four Z positions of a stage.
type Impedance struct {
	Name  string // "R1", "C2", ...
	Kind  ImpedanceKind
	Value float64
}

// Stage is one designed second-order section.
type Stage struct {
	// Index is the 1-based pole pair number.
	Index int
	PoleFactor
	// Factor is the frequency factor used for this pass type.
	Factor float64
	Q      float64
	StageInput
	// RA is the computed feedback resistor.
	RA float64
	// Cutoff is the filter cutoff this stage is tuned for, in hertz.
	Cutoff float64
	// Z holds Z1..Z4.
	Z    [4]Impedance
	pass Pass
}

// DesignStage sizes stage index (0-based) of fs from in.
func DesignStage(fs FilterSpec, index int, in StageInput) (Stage, error) {
	pf, factor, err := fs.Stage(index)
	if err != nil {
		return Stage{}, err
	}
	ra, err := ComponentValue(pf.Gain, in.RB)
	if err != nil {
		return Stage{}, fmt.Errorf("stage %d: %w", index+1, err)
	}
	q, err := Quality(pf.Gain)
	if err != nil {
		return Stage{}, fmt.Errorf("stage %d: %w", index+1, err)
	}
	fc, err := rc.CutoffFrequencyScaled(in.R, in.C, factor)
	if err != nil {
		return Stage{}, fmt.Errorf("stage %d: %w", index+1, err)
	}

	return Stage{
		Index:      index + 1,
		PoleFactor: pf,
		Factor:     factor,
		Q:          q,
		StageInput: in,
		RA:         ra,
		Cutoff:     fc,
		Z:          placeImpedances(fs.Pass, in.R, in.C),
		pass:       fs.Pass,
	}, nil
}

func placeImpedances(pass Pass, r, c float64) [4]Impedance {
	res := [2]Impedance{{"R1", Resistor, r}, {"R2", Resistor, r}}
	caps := [2]Impedance{{"C1", Capacitor, c}, {"C2", Capacitor, c}}
	if pass == HighPass {
		return [4]Impedance{caps[0], caps[1], res[0], res[1]}
	}
	return [4]Impedance{res[0], res[1], caps[0], caps[1]}
}

// Design is a complete cascade.
type Design struct {
	Spec   FilterSpec
	Stages []Stage
}

// NewDesign sizes every stage of fs; inputs must hold one entry per pole
// pair.
func NewDesign(fs FilterSpec, inputs []StageInput) (Design, error) {
	if len(inputs) != fs.PolePairs() {
		return Design{}, fmt.Errorf("sallenkey: %d-pole %v needs %d stage inputs, got %d",
			fs.Poles, fs.Topology, fs.PolePairs(), len(inputs))
	}
	d := Design{Spec: fs, Stages: make([]Stage, 0, len(inputs))}
	for i, in := range inputs {
		st, err := DesignStage(fs, i, in)
		if err != nil {
			return Design{}, err
		}
		d.Stages = append(d.Stages, st)
	}
	return d, nil
}

// Gain returns the passband gain of the cascade, the product of stage gains.
func (d Design) Gain() float64 {
	g := 1.0
	for _, st := range d.Stages {
		g *= st.Gain
	}
	return g
}
