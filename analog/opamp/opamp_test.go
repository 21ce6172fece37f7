package opamp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-analog/analog"
	"github.com/cwbudde/algo-analog/analog/units"
	"github.com/cwbudde/algo-analog/internal/testutil"
)

func TestInvertingGain_Scenario(t *testing.T) {
	gain, err := InvertingGain(10000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if gain != -10 {
		t.Fatalf("InvertingGain(10k, 1k) = %v, want -10", gain)
	}

	vout := Output(gain, 0.5)
	if vout != -5 {
		t.Fatalf("Output = %v, want -5", vout)
	}
	v, label := units.ScaleForDisplay(vout, units.Voltage)
	if v != -5 || label != "V" {
		t.Fatalf("ScaleForDisplay(%v) = %v %q, want -5 V", vout, v, label)
	}
}

func TestNonInvertingGain(t *testing.T) {
	cases := []struct{ rf, rg, want float64 }{
		{10000, 1000, 11},
		{4700, 4700, 2},
		{5860, 10000, 1.586},
	}
	for _, c := range cases {
		got, err := NonInvertingGain(c.rf, c.rg)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireNearlyEqual(t, "gain", got, c.want, 1e-12)
	}
}

func TestGain_Errors(t *testing.T) {
	_, err := InvertingGain(1000, 0)
	testutil.RequireErrorIs(t, err, analog.ErrDivisionByZero)
	_, err = NonInvertingGain(1000, 0)
	testutil.RequireErrorIs(t, err, analog.ErrDivisionByZero)
	_, err = InvertingGain(-1000, 100)
	testutil.RequireErrorIs(t, err, analog.ErrNonPositiveInput)
	_, err = InvertingGain(1000, -100)
	testutil.RequireErrorIs(t, err, analog.ErrNonPositiveInput)
	_, err = NonInvertingGain(0, 100)
	testutil.RequireErrorIs(t, err, analog.ErrNonPositiveInput)
	_, err = NonInvertingGain(math.NaN(), 100)
	testutil.RequireErrorIs(t, err, analog.ErrNonFinite)
}

func TestAmplifier_Output(t *testing.T) {
	cases := []struct {
		amp      Amplifier
		vin      float64
		wantGain float64
		wantVout float64
	}{
		{Amplifier{Inverting, 10000, 1000}, 0.5, -10, -5},
		{Amplifier{Inverting, 2200, 2200}, -1.5, -1, 1.5},
		{Amplifier{NonInverting, 9000, 1000}, 0.2, 10, 2},
	}
	for _, c := range cases {
		gain, vout, err := c.amp.Output(c.vin)
		if err != nil {
			t.Fatalf("%v: %v", c.amp.Config, err)
		}
		testutil.RequireNearlyEqual(t, c.amp.Config.String()+" gain", gain, c.wantGain, 1e-12)
		testutil.RequireNearlyEqual(t, c.amp.Config.String()+" vout", vout, c.wantVout, 1e-12)
	}

	if _, _, err := (Amplifier{Config: Configuration(5), Feedback: 1, Input: 1}).Output(1); err == nil {
		t.Fatal("expected error for unknown configuration")
	}
	_, _, err := Amplifier{Inverting, 1000, 1000}.Output(math.Inf(1))
	testutil.RequireErrorIs(t, err, analog.ErrNonFinite)
}
