package rc

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-analog/analog"
	"github.com/cwbudde/algo-analog/internal/testutil"
)

func TestCutoffFrequency_Scenario(t *testing.T) {
	fc, err := CutoffFrequency(1000, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, "fc", fc, 159.15494309189535, 1e-12)
	if math.Abs(fc-159.15) > 0.01 {
		t.Fatalf("fc = %v, want ~159.15", fc)
	}
}

func TestCutoffFrequencyScaled(t *testing.T) {
	base, err := CutoffFrequency(10000, 10e-9)
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := CutoffFrequencyScaled(10000, 10e-9, 1.231)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNearlyEqual(t, "scaled", scaled, base/1.231, 1e-12)
}

func TestCutoffFrequency_Errors(t *testing.T) {
	cases := []struct {
		name      string
		r, c, fac float64
		want      error
	}{
		{"zero r", 0, 1e-6, 1, analog.ErrDivisionByZero},
		{"zero c", 1000, 0, 1, analog.ErrDivisionByZero},
		{"zero factor", 1000, 1e-6, 0, analog.ErrDivisionByZero},
		{"negative r", -1000, 1e-6, 1, analog.ErrNonPositiveInput},
		{"negative factor", 1000, 1e-6, -2, analog.ErrNonPositiveInput},
		{"nan c", 1000, math.NaN(), 1, analog.ErrNonFinite},
		{"underflow", 1e-200, 1e-200, 1, analog.ErrDivisionByZero},
		{"subnormal denominator", 1e-160, 1e-160, 1, analog.ErrDivisionByZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fc, err := CutoffFrequencyScaled(c.r, c.c, c.fac)
			testutil.RequireErrorIs(t, err, c.want)
			if fc != 0 {
				t.Fatalf("fc = %v on error, want 0", fc)
			}
		})
	}
}

func TestRequiredComponents_InvertCutoff(t *testing.T) {
	cases := []struct{ r, c float64 }{
		{1000, 1e-6},
		{4700, 22e-9},
		{1e6, 100e-12},
	}
	for _, tc := range cases {
		fc, err := CutoffFrequency(tc.r, tc.c)
		if err != nil {
			t.Fatal(err)
		}
		r, err := RequiredResistance(tc.c, fc)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireNearlyEqual(t, "R", r, tc.r, 1e-12)
		c, err := RequiredCapacitance(tc.r, fc)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireNearlyEqual(t, "C", c, tc.c, 1e-12)
	}

	_, err := RequiredResistance(1e-6, 0)
	testutil.RequireErrorIs(t, err, analog.ErrDivisionByZero)
	_, err = RequiredCapacitance(-5, 100)
	testutil.RequireErrorIs(t, err, analog.ErrNonPositiveInput)
}

func TestRequiredComponents_TinyOperands(t *testing.T) {
	r, err := RequiredResistance(1e-200, 1e-200)
	testutil.RequireErrorIs(t, err, analog.ErrDivisionByZero)
	if r != 0 {
		t.Fatalf("r = %v on error, want 0", r)
	}
	c, err := RequiredCapacitance(1e-160, 1e-160)
	testutil.RequireErrorIs(t, err, analog.ErrDivisionByZero)
	if c != 0 {
		t.Fatalf("c = %v on error, want 0", c)
	}
}

func TestFilter_ResponseAtCutoff(t *testing.T) {
	for _, pass := range []Pass{LowPass, HighPass} {
		f := Filter{Pass: pass, R: 1000, C: 1e-6}
		fc, err := f.Cutoff()
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireNearlyEqual(t, pass.String(), cmplx.Abs(f.Response(fc)), 1/math.Sqrt2, 1e-12)
	}

	lp := Filter{Pass: LowPass, R: 1000, C: 1e-6}
	if g := cmplx.Abs(lp.Response(1)); g < 0.999 {
		t.Fatalf("low-pass passband gain = %v", g)
	}
	hp := Filter{Pass: HighPass, R: 1000, C: 1e-6}
	if g := cmplx.Abs(hp.Response(1)); g > 0.01 {
		t.Fatalf("high-pass stopband gain = %v", g)
	}
}
