package satgo_test

import (
	"fmt"

	"github.com/hupe1980/satgo"
)

// Example demonstrates saturating arithmetic replacing native wrapping.
func Example() {
	a := satgo.New[int8](100)
	b := satgo.New[int8](100)

	fmt.Println(a.Add(b)) // native int8 would wrap to -56
	fmt.Println(a.Mul(b)) // native int8 would wrap to 16
	// Output:
	// 127
	// 127
}

// Example_divisionByZero shows division by zero being absorbed as Max
// instead of panicking.
func Example_divisionByZero() {
	size := satgo.New[int32](4096)
	stride := satgo.New[int32](0) // attacker-controlled field

	fmt.Println(size.Div(stride))
	// Output: 2147483647
}

// ExampleConvert demonstrates clamped narrowing of a wider field.
func ExampleConvert() {
	wide := satgo.New[int32](200)

	fmt.Println(satgo.Convert[int8](wide))
	fmt.Println(satgo.Convert[int8](satgo.New[int32](-200)))
	fmt.Println(satgo.Convert[int8](satgo.New[int32](42)))
	// Output:
	// 127
	// -128
	// 42
}

// ExampleInt_Inc shows the increment sticking at the upper bound.
func ExampleInt_Inc() {
	x := satgo.New[int8](126)
	x.Inc()
	x.Inc()
	x.Inc()

	fmt.Println(x)
	// Output: 127
}
