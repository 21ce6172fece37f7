package units

import "fmt"

// Dimension tags the physical quantity of a [Measurement].
type Dimension int

const (
	Resistance Dimension = iota
	Capacitance
	Frequency
	Voltage
)

// String returns the lower-case name of the dimension.
func (d Dimension) String() string {
	switch d {
	case Resistance:
		return "resistance"
	case Capacitance:
		return "capacitance"
	case Frequency:
		return "frequency"
	case Voltage:
		return "voltage"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// Unit returns the SI base unit symbol.
func (d Dimension) Unit() string {
	switch d {
	case Resistance:
		return "Ω"
	case Capacitance:
		return "F"
	case Frequency:
		return "Hz"
	case Voltage:
		return "V"
	default:
		return ""
	}
}

// Signed reports whether negative magnitudes are meaningful.
func (d Dimension) Signed() bool { return d == Voltage }

func (d Dimension) valid() bool { return d >= Resistance && d <= Voltage }

// Prefix is a decimal SI prefix.
type Prefix int

const (
	PrefixNone Prefix = iota
	Kilo
	Mega
	Milli
	Micro
	Nano
	Pico
)

// Factor returns the multiplier the prefix stands for.
func (p Prefix) Factor() float64 {
	switch p {
	case Kilo:
		return 1e3
	case Mega:
		return 1e6
	case Milli:
		return 1e-3
	case Micro:
		return 1e-6
	case Nano:
		return 1e-9
	case Pico:
		return 1e-12
	default:
		return 1
	}
}

// Symbol returns the display symbol ("k", "M", "µ", ...). PrefixNone has none.
func (p Prefix) Symbol() string {
	switch p {
	case Kilo:
		return "k"
	case Mega:
		return "M"
	case Milli:
		return "m"
	case Micro:
		return "µ"
	case Nano:
		return "n"
	case Pico:
		return "p"
	default:
		return ""
	}
}

// suffixes maps lower-case input suffixes to prefixes, per dimension.
var suffixes = map[Dimension]map[string]Prefix{
	Resistance: {
		"o": PrefixNone,
		"k": Kilo,
		"m": Mega,
	},
	Capacitance: {
		"u": Micro,
		"n": Nano,
		"p": Pico,
	},
	Frequency: {
		"h": PrefixNone,
		"k": Kilo,
		"m": Mega,
	},
	Voltage: {
		"v": PrefixNone,
	},
}

// Suffixes returns the accepted input suffixes for d in a stable order.
func Suffixes(d Dimension) []string {
	switch d {
	case Resistance:
		return []string{"o", "k", "m"}
	case Capacitance:
		return []string{"u", "n", "p"}
	case Frequency:
		return []string{"h", "k", "m"}
	case Voltage:
		return []string{"v"}
	default:
		return nil
	}
}
