// Package units converts user-typed magnitudes with single-letter unit
// suffixes into canonical SI values, and scales SI values back into a
// prefixed form for display.
//
// Suffixes are case-insensitive and depend on the dimension:
//
//	resistance   o = Ω, k = kΩ, m = MΩ
//	capacitance  u = µF, n = nF, p = pF
//	frequency    h = Hz, k = kHz, m = MHz
//	voltage      v = V
//
// Because "m" means mega for resistance and frequency, there is no milli
// suffix on input. Display scaling does use milli and micro.
package units
