package units

import "errors"

// ErrSyntax reports text that does not start with a decimal number.
var ErrSyntax = errors.New("invalid number syntax")
