// Package analog holds the error kinds shared by the component-math packages.
//
// The calculators live in sub-packages:
//
//   - [github.com/cwbudde/algo-analog/analog/units]: unit-suffix normalization and display scaling
//   - [github.com/cwbudde/algo-analog/analog/resistor]: standard values, color codes, networks
//   - [github.com/cwbudde/algo-analog/analog/opamp]: inverting and non-inverting gain
//   - [github.com/cwbudde/algo-analog/analog/filter/rc]: first-order RC sizing
//   - [github.com/cwbudde/algo-analog/analog/filter/sallenkey]: Butterworth and Chebyshev Sallen-Key stages
//
// All functions are pure. A violated precondition is reported as an error that
// wraps one of the sentinels below, so callers test it with [errors.Is].
package analog
