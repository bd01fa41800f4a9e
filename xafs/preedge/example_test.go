package preedge_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xafs/xafs/preedge"
)

func ExampleNormalize() {
	// Synthetic spectrum: smooth unit edge at 100 eV over a linear
	// baseline, sampled every 10 eV.
	energy := make([]float64, 21)
	mu := make([]float64, 21)

	for i := range energy {
		e := float64(i) * 10
		energy[i] = e
		mu[i] = 0.1 + 0.001*e + 0.5*(1+math.Tanh((e-100)/10))
	}

	res, err := preedge.Normalize(energy, mu,
		preedge.WithNormRange(20, math.NaN()))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("e0: %.0f eV\n", res.E0)
	fmt.Printf("edge step: %.2f\n", res.EdgeStep)
	fmt.Printf("norm range: [%.0f, %.0f] eV\n", res.Norm1, res.Norm2)
	// Output:
	// e0: 100 eV
	// edge step: 0.94
	// norm range: [20, 100] eV
}
