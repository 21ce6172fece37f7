package analog

import "errors"

var (
	// ErrInvalidUnit reports a unit suffix that the dimension does not know.
	ErrInvalidUnit = errors.New("invalid unit")
	// ErrInvalidColorBand reports a color that is not valid in its band position.
	ErrInvalidColorBand = errors.New("invalid color band")
	// ErrUnrepresentableValue reports a resistance outside the range of a 3-band code.
	ErrUnrepresentableValue = errors.New("value not representable")
	// ErrDivisionByZero reports a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidGain reports a Sallen-Key gain that is not greater than one.
	ErrInvalidGain = errors.New("invalid gain")
	// ErrNonPositiveInput reports a magnitude that must be > 0.
	ErrNonPositiveInput = errors.New("input must be positive")
	// ErrNonFinite reports a NaN or infinite magnitude.
	ErrNonFinite = errors.New("input must be finite")
	// ErrEmptyInput reports an empty list of values.
	ErrEmptyInput = errors.New("empty input")
)
