package resistor

import "fmt"

func ExampleDecode() {
	r, err := Decode(Brown, Black, Red)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output:
	// 1000
}

func ExampleEncode() {
	b, err := Encode(47000)
	if err != nil {
		panic(err)
	}
	fmt.Println(b)
	// Output:
	// [yellow, violet, orange]
}

func ExampleSeries_Approximate() {
	m, combos, err := E12().Approximate(1100)
	if err != nil {
		panic(err)
	}
	fmt.Println(m.Value, len(combos) > 0, combos[0])
	// Output:
	// 1000 true Series: 1 ohms + 1000 ohms
}
