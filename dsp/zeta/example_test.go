package zeta_test

import (
	"fmt"

	"github.com/cwbudde/algo-arcsieve/dsp/zeta"
)

func ExampleEvaluator_EvaluateDetailed() {
	e, _ := zeta.New(zeta.DefaultLaurent(), nil)

	ev, _ := e.EvaluateDetailed(1.05)
	fmt.Printf("%s %.4f\n", ev.Branch, ev.Value)

	ev, _ = e.EvaluateDetailed(1)
	fmt.Printf("%s saturated=%v\n", ev.Branch, ev.Saturated)

	// Output:
	// laurent 20.5808
	// laurent saturated=true
}
