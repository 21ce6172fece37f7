package shell

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/algo-analog/analog/filter/sallenkey"
	"github.com/cwbudde/algo-analog/analog/units"
)

// Multiples of the cutoff shown in the response table.
var responsePoints = []float64{0.1, 0.5, 1, 2, 10}

func (s *Shell) sallenKeyMenu(ctx context.Context) error {
	topologies := []sallenkey.Topology{sallenkey.Butterworth, sallenkey.Chebyshev05dB, sallenkey.Chebyshev2dB}
	for {
		choice, err := s.menu(ctx, "Sallen-Key Filter Configuration",
			topologies[0].String(),
			topologies[1].String(),
			topologies[2].String(),
			"Back to main menu",
		)
		if err != nil {
			return err
		}
		if choice == 4 {
			return nil
		}
		if err := s.designSallenKey(ctx, topologies[choice-1]); err != nil {
			return err
		}
	}
}

func (s *Shell) designSallenKey(ctx context.Context, topo sallenkey.Topology) error {
	word, err := s.askWord(ctx, "Is the filter 'low' or 'high' pass: ", "low", "high")
	if err != nil {
		return err
	}
	pass := sallenkey.LowPass
	if word == "high" {
		pass = sallenkey.HighPass
	}

	spec, err := ask(ctx, s, "Enter the number of poles (2, 4, or 6): ", func(text string) (sallenkey.FilterSpec, error) {
		poles, err := strconv.Atoi(text)
		if err != nil {
			return sallenkey.FilterSpec{}, fmt.Errorf("%q: %w", text, sallenkey.ErrInvalidPoleCount)
		}
		return sallenkey.Lookup(topo, poles, pass)
	})
	if err != nil {
		return err
	}

	s.printf("\nGenerating a Sallen-Key %v pass filter diagram...\n%s", pass, sallenKeyDiagram)

	inputs := make([]sallenkey.StageInput, spec.PolePairs())
	for i := range inputs {
		s.printf("\n--- Component values for pole pair %d ---\n", i+1)
		if inputs[i].R, err = s.askValue(ctx, "R (R1 = R2)", units.Resistance); err != nil {
			return err
		}
		if inputs[i].C, err = s.askValue(ctx, "C (C1 = C2)", units.Capacitance); err != nil {
			return err
		}
		if inputs[i].RB, err = s.askValue(ctx, "RB", units.Resistance); err != nil {
			return err
		}
	}

	d, err := sallenkey.NewDesign(spec, inputs)
	if err != nil {
		s.report("sallen-key", err)
		return nil
	}
	s.log.Debug().Stringer("topology", topo).Int("poles", spec.Poles).Stringer("pass", pass).Float64("gain", d.Gain()).Msg("designed filter")

	for _, st := range d.Stages {
		s.printStage(st)
	}
	s.printResponse(d)
	return nil
}

func (s *Shell) printStage(st sallenkey.Stage) {
	s.printf("\nPole pair %d: gain K = %.*g, Q = %.*g\n", st.Index, s.cfg.Precision, st.Gain, s.cfg.Precision, st.Q)
	for i, z := range st.Z {
		d := units.Resistance
		if z.Kind == sallenkey.Capacitor {
			d = units.Capacitance
		}
		s.printf("  Z%d = %s = %s\n", i+1, z.Name, s.format(z.Value, d))
	}
	s.printf("  RA = %s, RB = %s\n", s.format(st.RA, units.Resistance), s.format(st.RB, units.Resistance))
	s.printf("  Cutoff frequency = %s\n", s.format(st.Cutoff, units.Frequency))

	s.printf("Resistor R1 & R2:\n")
	s.printCode(st.R)
	s.printf("Resistor RA:\n")
	s.printCode(st.RA)
	s.printf("Resistor RB:\n")
	s.printCode(st.RB)
}

// printResponse tabulates the normalized cascade response around the cutoff
// of the first stage.
func (s *Shell) printResponse(d sallenkey.Design) {
	fc := d.Stages[0].Cutoff
	freqs := make([]float64, len(responsePoints))
	for i, k := range responsePoints {
		freqs[i] = k * fc
	}
	mag, err := d.NormalizedResponse(freqs)
	if err != nil {
		s.report("response", err)
		return
	}
	s.printf("\nPassband gain %.*g (%.2f dB). Response relative to passband:\n",
		s.cfg.Precision, d.Gain(), 20*math.Log10(d.Gain()))
	for i, db := range sallenkey.Decibels(mag) {
		s.printf("  %12s  %8.2f dB\n", s.format(freqs[i], units.Frequency), db)
	}
}
