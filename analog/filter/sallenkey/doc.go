// Package sallenkey sizes cascaded equal-component Sallen-Key active filters
// from tabulated Butterworth and Chebyshev pole data.
//
// An N-pole filter (N = 2, 4 or 6) is built from N/2 second-order stages.
// Every stage uses R1 = R2 = R and C1 = C2 = C, and sets its Q through the
// non-inverting gain K = 1 + RA/RB of its op-amp, so Q = 1/(3-K). The table
// of a (topology, poles) pair gives one [PoleFactor] per stage: the gain K and
// the frequency factors that relate the stage's natural frequency 1/(2πRC)
// to the filter cutoff for low-pass and high-pass designs.
//
// Impedance placement follows the usual four-impedance diagram:
//
//	low-pass:  Z1 = R1, Z2 = R2, Z3 = C1, Z4 = C2
//	high-pass: Z1 = C1, Z2 = C2, Z3 = R1, Z4 = R2
//
// [Design.Response] evaluates the analog transfer function of the cascade.
package sallenkey
