package bcnum_test

import (
	"fmt"

	"bclang.dev/bcnum/bcnum"
)

func init() {
	bcnum.InitNumbers(bcnum.DefaultConfig())
}

func ExampleFromString() {
	n := bcnum.FromString("012345.6780", 4)
	fmt.Println(n)
	bcnum.Release(&n)
	// Output: 12345.6780
}

func ExampleDivide() {
	x := bcnum.FromString("10", 0)
	y := bcnum.FromString("3", 0)
	z, err := bcnum.Divide(x, y, 4)
	if err != nil {
		fmt.Println("error:", err)
	} else {
		fmt.Println(z)
	}
	bcnum.Release(&x)
	bcnum.Release(&y)
	bcnum.Release(&z)
	// Output: 3.3333
}

func ExampleRaise() {
	base := bcnum.FromString("2", 0)
	expo := bcnum.FromString("10", 0)
	z, err := bcnum.Raise(base, expo, 0, nil)
	if err != nil {
		fmt.Println("error:", err)
	} else {
		fmt.Println(z)
	}
	bcnum.Release(&base)
	bcnum.Release(&expo)
	bcnum.Release(&z)
	// Output: 1024
}

func ExampleSqrt() {
	x := bcnum.FromString("2", 0)
	bcnum.Sqrt(&x, 10)
	fmt.Println(x)
	bcnum.Release(&x)
	// Output: 1.4142135623
}
