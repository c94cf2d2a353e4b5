package arc_test

import (
	"fmt"

	"github.com/cwbudde/algo-arcsieve/dsp/arc"
)

func ExampleDecomposer_Classify() {
	d, _ := arc.New(arc.WithMaxDenominator(1))

	for _, x := range []float64{0, 0.5} {
		c, _ := d.Classify(x)
		fmt.Printf("%.1f %s %.3f\n", x, c.Kind, c.Contribution)
	}

	// Output:
	// 0.0 major 1.000
	// 0.5 minor 0.693
}
