package shell

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-analog/analog/resistor"
	"github.com/cwbudde/algo-analog/analog/units"
)

func (s *Shell) resistorMenu(ctx context.Context) error {
	for {
		choice, err := s.menu(ctx, "Resistor Calculator",
			"Calculate resistance from color codes",
			"Solve resistor network",
			"Find nearest standard resistor",
			"Standard value and color code for a resistor",
			"Back to main menu",
		)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.decodeColors(ctx)
		case 2:
			err = s.solveNetwork(ctx)
		case 3:
			err = s.nearestStandard(ctx)
		case 4:
			err = s.standardCode(ctx)
		case 5:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) decodeColors(ctx context.Context) error {
	s.printf("Colors: black brown red orange yellow green blue violet gray white; multiplier also gold silver\n")
	first, err := s.askDigitBand(ctx, "Enter first color band: ")
	if err != nil {
		return err
	}
	second, err := s.askDigitBand(ctx, "Enter second color band: ")
	if err != nil {
		return err
	}
	mult, err := s.askMultiplierBand(ctx, "Enter multiplier band: ")
	if err != nil {
		return err
	}

	bands := resistor.Bands{First: first, Second: second, Multiplier: mult}
	r, err := bands.Decode()
	if err != nil {
		s.report("decode", err)
		return nil
	}
	s.log.Debug().Stringer("bands", bands).Float64("ohms", r).Msg("decoded color code")
	s.printf("Resistance: %s\n", s.format(r, units.Resistance))
	return nil
}

func (s *Shell) askGroup(ctx context.Context, kind string) ([]float64, error) {
	n, err := s.askCount(ctx, fmt.Sprintf("Enter the number of resistors in %s: ", kind), 1, 50)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, n)
	for i := range n {
		v, err := s.askValue(ctx, fmt.Sprintf("Value of %s resistor %d", kind, i+1), units.Resistance)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *Shell) solveNetwork(ctx context.Context) error {
	seriesGroup, err := s.askGroup(ctx, "series")
	if err != nil {
		return err
	}
	rs, err := resistor.SeriesResistance(seriesGroup)
	if err != nil {
		s.report("series", err)
		return nil
	}
	s.printf("Total resistance of resistors in series: %s\n", s.format(rs, units.Resistance))

	parallelGroup, err := s.askGroup(ctx, "parallel")
	if err != nil {
		return err
	}
	rp, err := resistor.ParallelResistance(parallelGroup)
	if err != nil {
		s.report("parallel", err)
		return nil
	}
	s.printf("Total resistance of resistors in parallel: %s\n", s.format(rp, units.Resistance))

	c, err := s.askCount(ctx, "Combine the two totals: 1 in series, 2 in parallel: ", 1, 2)
	if err != nil {
		return err
	}
	conn := resistor.InSeries
	if c == 2 {
		conn = resistor.InParallel
	}
	total, err := resistor.CombineNetwork(seriesGroup, parallelGroup, conn)
	if err != nil {
		s.report("combine", err)
		return nil
	}
	s.log.Debug().Stringer("connection", conn).Float64("ohms", total).Msg("combined network")
	s.printf("Total combined resistance (%v): %s\n", conn, s.format(total, units.Resistance))
	return nil
}

func (s *Shell) nearestStandard(ctx context.Context) error {
	target, err := s.askValue(ctx, "Enter target resistance", units.Resistance)
	if err != nil {
		return err
	}
	m, combos, err := s.cfg.Series.Approximate(target)
	if err != nil {
		s.report("nearest", err)
		return nil
	}
	s.log.Debug().Float64("target", target).Float64("nearest", m.Value).Int("combinations", len(combos)).Msg("resolved standard value")

	s.printf("Nearest standard resistor: %s (off by %s)\n",
		s.format(m.Value, units.Resistance), s.format(m.Difference, units.Resistance))
	if m.Exact() {
		s.printf("Exact match.\n")
		return nil
	}
	if len(combos) == 0 {
		s.printf("No two-resistor combination is closer.\n")
		return nil
	}
	s.printf("Suggested combinations:\n")
	for _, c := range combos {
		s.printf("  %v\n", c)
	}
	return nil
}

func (s *Shell) standardCode(ctx context.Context) error {
	r, err := s.askValue(ctx, "Enter resistor value", units.Resistance)
	if err != nil {
		return err
	}
	s.printCode(r)
	return nil
}

// printCode shows the nearest standard value of r and its color bands.
func (s *Shell) printCode(r float64) {
	code, err := s.cfg.Series.StandardCode(r)
	if err != nil {
		s.report("color code", err)
		return
	}
	s.log.Debug().Float64("target", r).Float64("nearest", code.Value).Stringer("bands", code.Bands).Msg("encoded standard value")
	s.printf("Nearest standard resistor: %s\n", s.format(code.Value, units.Resistance))
	s.printf("Color code: %v\n", code.Bands)
}
