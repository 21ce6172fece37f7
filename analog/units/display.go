package units

import (
	"math"
	"strconv"
)

// ScaleForDisplay picks a prefix for value and returns the scaled value with
// its unit label, for example (4.7, "kΩ") for 4700 ohms. The sign is kept.
//
// Lower thresholds are inclusive: |v| >= 1e6 is mega, >= 1e3 kilo, >= 1 base,
// >= 1e-3 milli, >= 1e-6 micro. Anything smaller (and zero) stays in the base
// unit. So 1000 Hz reads "1 kHz", not the "1000 Hz" a strict > comparison
// would give.
//
// Capacitance follows the component-marking convention instead: anything
// above 1 nF is shown in µF, above 1 pF in nF, and the rest in pF.
func ScaleForDisplay(value float64, d Dimension) (float64, string) {
	p := displayPrefix(math.Abs(value), d)
	return value / p.Factor(), p.Symbol() + d.Unit()
}

func displayPrefix(abs float64, d Dimension) Prefix {
	if math.IsNaN(abs) || math.IsInf(abs, 0) || abs == 0 {
		return PrefixNone
	}
	if d == Capacitance {
		switch {
		case abs > 1e-9:
			return Micro
		case abs > 1e-12:
			return Nano
		default:
			return Pico
		}
	}
	switch {
	case abs >= 1e6:
		return Mega
	case abs >= 1e3:
		return Kilo
	case abs >= 1:
		return PrefixNone
	case abs >= 1e-3:
		return Milli
	case abs >= 1e-6:
		return Micro
	default:
		return PrefixNone
	}
}

// Format renders value with [ScaleForDisplay] using precision significant
// digits; precision <= 0 uses the shortest exact representation.
func Format(value float64, d Dimension, precision int) string {
	v, label := ScaleForDisplay(value, d)
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'g', precision, 64) + " " + label
}
