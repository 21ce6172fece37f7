package shell

import (
	"context"

	"github.com/cwbudde/algo-analog/analog/filter/rc"
	"github.com/cwbudde/algo-analog/analog/units"
)

func (s *Shell) filterMenu(ctx context.Context) error {
	for {
		choice, err := s.menu(ctx, "RC Filter Calculator",
			"Low pass filter",
			"High pass filter",
			"Back to main menu",
		)
		if err != nil {
			return err
		}
		if choice == 3 {
			return nil
		}

		pass := rc.LowPass
		diagram := lowPassDiagram
		if choice == 2 {
			pass = rc.HighPass
			diagram = highPassDiagram
		}
		s.printf("\nSelected %v pass filter:\n%s", pass, diagram)
		if err := s.rcMenu(ctx, pass); err != nil {
			return err
		}
	}
}

func (s *Shell) rcMenu(ctx context.Context, pass rc.Pass) error {
	for {
		choice, err := s.menu(ctx, "RC "+pass.String()+" pass",
			"Calculate resistance",
			"Calculate capacitance",
			"Calculate cutoff frequency",
			"Back to filter menu",
		)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.requiredResistance(ctx)
		case 2:
			err = s.requiredCapacitance(ctx)
		case 3:
			err = s.cutoff(ctx)
		case 4:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) requiredResistance(ctx context.Context) error {
	c, err := s.askValue(ctx, "Capacitance", units.Capacitance)
	if err != nil {
		return err
	}
	f, err := s.askValue(ctx, "Cutoff frequency", units.Frequency)
	if err != nil {
		return err
	}
	r, err := rc.RequiredResistance(c, f)
	if err != nil {
		s.report("required resistance", err)
		return nil
	}
	s.log.Debug().Float64("c", c).Float64("f", f).Float64("r", r).Msg("sized resistor")
	s.printf("Required resistance = %s\n", s.format(r, units.Resistance))
	s.printCode(r)
	return nil
}

func (s *Shell) requiredCapacitance(ctx context.Context) error {
	r, err := s.askValue(ctx, "Resistance", units.Resistance)
	if err != nil {
		return err
	}
	f, err := s.askValue(ctx, "Cutoff frequency", units.Frequency)
	if err != nil {
		return err
	}
	c, err := rc.RequiredCapacitance(r, f)
	if err != nil {
		s.report("required capacitance", err)
		return nil
	}
	s.log.Debug().Float64("r", r).Float64("f", f).Float64("c", c).Msg("sized capacitor")
	s.printf("Required capacitance = %s\n", s.format(c, units.Capacitance))
	return nil
}

func (s *Shell) cutoff(ctx context.Context) error {
	c, err := s.askValue(ctx, "Capacitance", units.Capacitance)
	if err != nil {
		return err
	}
	r, err := s.askValue(ctx, "Resistance", units.Resistance)
	if err != nil {
		return err
	}
	fc, err := rc.CutoffFrequency(r, c)
	if err != nil {
		s.report("cutoff", err)
		return nil
	}
	s.log.Debug().Float64("r", r).Float64("c", c).Float64("fc", fc).Msg("computed cutoff")
	s.printf("Cutoff frequency = %s\n", s.format(fc, units.Frequency))
	return nil
}
