package resistor

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-analog/analog"
	"github.com/cwbudde/algo-analog/internal/testutil"
)

func TestE12_Shape(t *testing.T) {
	s := E12()
	if s.Len() != 85 {
		t.Fatalf("Len() = %d, want 85", s.Len())
	}
	if s.At(0) != 1.0 || s.At(s.Len()-1) != 10e6 {
		t.Fatalf("range = [%v, %v], want [1, 1e7]", s.At(0), s.At(s.Len()-1))
	}
	for i := 1; i < s.Len(); i++ {
		if s.At(i) <= s.At(i-1) {
			t.Fatalf("not ascending at %d: %v <= %v", i, s.At(i), s.At(i-1))
		}
	}
	// Each decade repeats the mantissas of the first one.
	for i := 12; i < 84; i++ {
		testutil.RequireNearlyEqual(t, "decade", s.At(i)/s.At(i-12), 10, 1e-12)
	}
}

func TestSeries_ValuesIsCopy(t *testing.T) {
	v := E12().Values()
	v[0] = 999
	if E12().At(0) != 1.0 {
		t.Fatal("Values() exposed internal storage")
	}
}

func TestNewSeries_Validation(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   error
	}{
		{"empty", nil, analog.ErrEmptyInput},
		{"zero", []float64{0, 1}, analog.ErrNonPositiveInput},
		{"nan", []float64{1, math.NaN()}, analog.ErrNonFinite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewSeries(c.values)
			testutil.RequireErrorIs(t, err, c.want)
		})
	}
	if _, err := NewSeries([]float64{10, 10}); err == nil {
		t.Fatal("expected error for repeated value")
	}
}

func TestNearest_MembersAreSelfNearest(t *testing.T) {
	s := E12()
	for i := 0; i < s.Len(); i++ {
		v := s.At(i)
		m, err := s.Nearest(v)
		if err != nil {
			t.Fatalf("Nearest(%v): %v", v, err)
		}
		if m.Value != v || !m.Exact() {
			t.Fatalf("Nearest(%v) = %+v, want exact self match", v, m)
		}
	}
}

func TestNearest_MinimizesDistance(t *testing.T) {
	s := E12()
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 2000; n++ {
		target := math.Pow(10, rng.Float64()*8-0.5)
		m, err := s.Nearest(target)
		if err != nil {
			t.Fatalf("Nearest(%v): %v", target, err)
		}
		for i := 0; i < s.Len(); i++ {
			if d := math.Abs(target - s.At(i)); d < m.Difference {
				t.Fatalf("Nearest(%v) = %v (diff %v), but %v is closer (diff %v)",
					target, m.Value, m.Difference, s.At(i), d)
			}
		}
		testutil.RequireNearlyEqual(t, "difference", m.Difference, math.Abs(target-m.Value), 0)
	}
}

func TestNearest_TieGoesToFirst(t *testing.T) {
	s, err := NewSeries([]float64{10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}
	m, err := s.Nearest(15)
	if err != nil {
		t.Fatal(err)
	}
	if m.Value != 10 {
		t.Fatalf("Nearest(15) = %v, want 10 (first of tie)", m.Value)
	}
}

func TestNearest_Endpoints(t *testing.T) {
	cases := []struct{ target, want float64 }{
		{0.01, 1.0},
		{1.0, 1.0},
		{1e7, 1e7},
		{5e9, 1e7},
	}
	for _, c := range cases {
		m, err := Nearest(c.target)
		if err != nil {
			t.Fatalf("Nearest(%v): %v", c.target, err)
		}
		if m.Value != c.want {
			t.Fatalf("Nearest(%v) = %v, want %v", c.target, m.Value, c.want)
		}
	}
}

func TestNearest_Invalid(t *testing.T) {
	_, err := Nearest(0)
	testutil.RequireErrorIs(t, err, analog.ErrNonPositiveInput)
	_, err = Nearest(-10)
	testutil.RequireErrorIs(t, err, analog.ErrNonPositiveInput)
	_, err = Nearest(math.Inf(1))
	testutil.RequireErrorIs(t, err, analog.ErrNonFinite)
	_, err = Series{}.Nearest(10)
	testutil.RequireErrorIs(t, err, analog.ErrEmptyInput)
}

func TestNearest_Scenario1000(t *testing.T) {
	m, err := Nearest(1000)
	if err != nil {
		t.Fatal(err)
	}
	if m.Value != 1000 || m.Difference != 0 {
		t.Fatalf("Nearest(1000) = %+v", m)
	}
	combos, err := SuggestCombinations(1000, m.Difference)
	if err != nil {
		t.Fatal(err)
	}
	if len(combos) != 0 {
		t.Fatalf("SuggestCombinations(1000, 0) = %v, want none", combos)
	}
}
