package edgetable_test

import (
	"fmt"

	"github.com/cwbudde/algo-xafs/xafs/edgetable"
)

func ExampleTable_Lookup() {
	tab := edgetable.Default()

	z, _ := tab.AtomicNumber("Fe")
	e0, _ := tab.Lookup(z, "K")

	fmt.Printf("Fe K edge: %.0f eV\n", e0)
	// Output:
	// Fe K edge: 7112 eV
}
