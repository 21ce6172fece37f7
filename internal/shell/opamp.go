package shell

import (
	"context"

	"github.com/cwbudde/algo-analog/analog/opamp"
	"github.com/cwbudde/algo-analog/analog/units"
)

func (s *Shell) opampMenu(ctx context.Context) error {
	for {
		choice, err := s.menu(ctx, "Op-Amp Calculator",
			"Inverting op-amp",
			"Non-inverting op-amp",
			"Back to main menu",
		)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			s.printf("\n>> Inverting Op-Amp Configuration\n%s", invertingDiagram)
			err = s.amplifier(ctx, opamp.Inverting, "RI (input resistor)")
		case 2:
			s.printf("\n>> Non-Inverting Op-Amp Configuration\n%s", nonInvertingDiagram)
			err = s.amplifier(ctx, opamp.NonInverting, "RG (ground resistor)")
		case 3:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) amplifier(ctx context.Context, cfg opamp.Configuration, inputLabel string) error {
	vin, err := s.askValue(ctx, "Input voltage", units.Voltage)
	if err != nil {
		return err
	}
	rf, err := s.askValue(ctx, "RF (feedback resistor)", units.Resistance)
	if err != nil {
		return err
	}
	ri, err := s.askValue(ctx, inputLabel, units.Resistance)
	if err != nil {
		return err
	}

	amp := opamp.Amplifier{Config: cfg, Feedback: rf, Input: ri}
	gain, vout, err := amp.Output(vin)
	if err != nil {
		s.report("opamp", err)
		return nil
	}
	s.log.Debug().Stringer("config", cfg).Float64("gain", gain).Float64("vout", vout).Msg("computed amplifier")
	s.printf("\nThe gain of the %v op-amp is: %.*g\n", cfg, s.cfg.Precision, gain)
	s.printf("The output voltage is: %s\n", s.format(vout, units.Voltage))
	return nil
}
