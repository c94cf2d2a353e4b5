package core_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-arcsieve/dsp/core"
)

func ExampleRequirePositive() {
	err := core.RequirePositive("arc", "max denominator", 0)
	fmt.Println(err)
	fmt.Println(errors.Is(err, core.ErrInvalidArgument))

	// Output:
	// arc: max denominator must be > 0: 0: invalid argument
	// true
}

func ExampleFloorMod() {
	fmt.Println(core.FloorMod(2000, 3), core.FloorMod(-1000, 7))

	// Output:
	// 2 1
}
