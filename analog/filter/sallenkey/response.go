package sallenkey

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-analog/analog"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// NaturalFrequency returns 1/(2πRC) of the stage in hertz.
func (s Stage) NaturalFrequency() float64 {
	return s.Cutoff * s.Factor
}

// Response returns the complex transfer function of the stage at freq hertz:
//
//	low-pass:  H(s) = K·ω0² / (s² + s·ω0/Q + ω0²)
//	high-pass: H(s) = K·s²  / (s² + s·ω0/Q + ω0²)
func (s Stage) Response(freq float64) complex128 {
	x := freq / s.NaturalFrequency()
	den := complex(1-x*x, x/s.Q)
	if s.pass == HighPass {
		return complex(-s.Gain*x*x, 0) / den
	}
	return complex(s.Gain, 0) / den
}

// Response returns |H(f)| of the whole cascade for each frequency.
func (d Design) Response(freqs []float64) ([]float64, error) {
	if len(d.Stages) == 0 {
		return nil, fmt.Errorf("sallenkey: design has no stages")
	}
	for _, f := range freqs {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return nil, fmt.Errorf("sallenkey: frequency %v: %w", f, analog.ErrNonPositiveInput)
		}
	}

	out := make([]float64, len(freqs))
	for i := range out {
		out[i] = 1
	}
	re := make([]float64, len(freqs))
	im := make([]float64, len(freqs))
	mag := make([]float64, len(freqs))

	// |Π H| = Π |H|: accumulate stage magnitudes.
	for _, st := range d.Stages {
		for i, f := range freqs {
			h := st.Response(f)
			re[i] = real(h)
			im[i] = imag(h)
		}
		vecmath.Magnitude(mag, re, im)
		vecmath.MulBlockInPlace(out, mag)
	}
	return out, nil
}

// NormalizedResponse is [Design.Response] divided by the passband gain, so a
// Butterworth design reads 1/√2 at its cutoff.
func (d Design) NormalizedResponse(freqs []float64) ([]float64, error) {
	mag, err := d.Response(freqs)
	if err != nil {
		return nil, err
	}
	vecmath.ScaleBlock(mag, mag, 1/d.Gain())
	return mag, nil
}

// Decibels converts magnitudes to 20·log10(m) in place.
func Decibels(mag []float64) []float64 {
	for i, m := range mag {
		mag[i] = 20 * math.Log10(m)
	}
	return mag
}

// LogSweep returns n logarithmically spaced frequencies from start to stop
// inclusive.
func LogSweep(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("sallenkey: sweep needs at least 2 points, got %d", n)
	}
	if !(start > 0) || !(stop > start) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("sallenkey: sweep [%v, %v]: %w", start, stop, analog.ErrNonPositiveInput)
	}
	return floats.LogSpan(make([]float64, n), start, stop), nil
}
