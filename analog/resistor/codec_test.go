package resistor

import (
	"testing"

	"github.com/cwbudde/algo-analog/analog"
	"github.com/cwbudde/algo-analog/internal/testutil"
)

func TestDecode_Scenarios(t *testing.T) {
	cases := []struct {
		b1, b2, mult ColorBand
		want         float64
	}{
		{Black, Black, Black, 0},
		{Brown, Black, Red, 1000},
		{Yellow, Violet, Orange, 47000},
		{Yellow, Violet, Gold, 4.7},
		{Red, Red, Silver, 0.22},
		{White, White, White, 99e9},
		{Brown, Gray, Green, 1.8e6},
	}
	for _, c := range cases {
		got, err := Decode(c.b1, c.b2, c.mult)
		if err != nil {
			t.Fatalf("Decode(%v, %v, %v): %v", c.b1, c.b2, c.mult, err)
		}
		testutil.RequireNearlyEqual(t, Bands{c.b1, c.b2, c.mult}.String(), got, c.want, 1e-12)
	}
}

func TestDecode_InvalidBands(t *testing.T) {
	cases := []struct {
		b1, b2, mult ColorBand
	}{
		{Gold, Black, Red},
		{Brown, Silver, Red},
		{Brown, Black, ColorBand(12)},
		{ColorBand(-1), Black, Red},
	}
	for _, c := range cases {
		_, err := Decode(c.b1, c.b2, c.mult)
		testutil.RequireErrorIs(t, err, analog.ErrInvalidColorBand)
	}
}

func TestEncode_Scenario1000(t *testing.T) {
	got, err := Encode(1000)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Bands{Brown, Black, Red}); got != want {
		t.Fatalf("Encode(1000) = %v, want %v", got, want)
	}
}

func TestEncode_PowersOfTen(t *testing.T) {
	want := map[float64]ColorBand{
		0.1: Silver, 1: Gold, 10: Black, 100: Brown, 1e3: Red, 1e4: Orange,
		1e5: Yellow, 1e6: Green, 1e7: Blue, 1e8: Violet, 1e9: Gray, 1e10: White,
	}
	for r, mult := range want {
		got, err := Encode(r)
		if err != nil {
			t.Fatalf("Encode(%v): %v", r, err)
		}
		if got.First != Brown || got.Second != Black || got.Multiplier != mult {
			t.Fatalf("Encode(%v) = %v, want [brown, black, %v]", r, got, mult)
		}
	}
}

func TestEncode_RoundTripsDecode(t *testing.T) {
	for d1 := Brown; d1 <= White; d1++ {
		for d2 := Black; d2 <= White; d2++ {
			for _, mult := range Colors() {
				r, err := Decode(d1, d2, mult)
				if err != nil {
					t.Fatal(err)
				}
				got, err := Encode(r)
				if err != nil {
					t.Fatalf("Encode(%v): %v", r, err)
				}
				if want := (Bands{d1, d2, mult}); got != want {
					t.Fatalf("Encode(Decode(%v)) = %v (r=%v)", want, got, r)
				}
			}
		}
	}
}

func TestEncode_StandardSeriesDigits(t *testing.T) {
	s := E12()
	for i := 0; i < s.Len(); i++ {
		b, err := Encode(s.At(i))
		if err != nil {
			t.Fatalf("Encode(%v): %v", s.At(i), err)
		}
		r, err := b.Decode()
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireNearlyEqual(t, b.String(), r, s.At(i), 1e-12)
	}
}

func TestEncode_Truncates(t *testing.T) {
	got, err := Encode(4790)
	if err != nil {
		t.Fatal(err)
	}
	if want := (Bands{Yellow, Violet, Red}); got != want {
		t.Fatalf("Encode(4790) = %v, want %v", got, want)
	}
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(0)
	testutil.RequireErrorIs(t, err, analog.ErrNonPositiveInput)
	_, err = Encode(0.05)
	testutil.RequireErrorIs(t, err, analog.ErrUnrepresentableValue)
	_, err = Encode(1e11)
	testutil.RequireErrorIs(t, err, analog.ErrUnrepresentableValue)
}

func TestStandardCode(t *testing.T) {
	c, err := StandardCode(4650)
	if err != nil {
		t.Fatal(err)
	}
	if c.Value != 4700 || c.Target != 4650 {
		t.Fatalf("StandardCode(4650) = %+v", c)
	}
	testutil.RequireNearlyEqual(t, "difference", c.Difference, 50, 1e-12)
	if want := (Bands{Yellow, Violet, Red}); c.Bands != want {
		t.Fatalf("bands = %v, want %v", c.Bands, want)
	}

	_, err = StandardCode(-1)
	testutil.RequireErrorIs(t, err, analog.ErrNonPositiveInput)
}

func TestParseColor(t *testing.T) {
	cases := map[string]ColorBand{
		"black": Black, "Brown": Brown, " RED ": Red, "grey": Gray,
		"gray": Gray, "Gold": Gold, "silver": Silver, "violet": Violet,
	}
	for name, want := range cases {
		got, err := ParseColor(name)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %v, want %v", name, got, want)
		}
	}
	_, err := ParseColor("pink")
	testutil.RequireErrorIs(t, err, analog.ErrInvalidColorBand)
}

func TestColorBand_Classes(t *testing.T) {
	if Gold.IsDigit() || Silver.IsDigit() {
		t.Fatal("gold/silver must not be digit bands")
	}
	if !Gold.IsMultiplier() || !White.IsMultiplier() {
		t.Fatal("gold and white must be multiplier bands")
	}
	if got := ColorBand(40).String(); got != "ColorBand(40)" {
		t.Fatalf("String() = %q", got)
	}
	if len(Colors()) != 12 {
		t.Fatalf("Colors() has %d entries, want 12", len(Colors()))
	}
}
