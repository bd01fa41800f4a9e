// Package preedge performs XAFS pre-edge subtraction and normalization.
//
// Given a measured absorption spectrum mu(E), the pipeline locates the
// absorption edge from the maximum of the derivative (unless the caller
// supplies it), fits a line to the region below the edge and a
// polynomial of degree 1..5 to the region above it, extrapolates both
// fits to the edge to determine the edge step, and produces the
// normalized spectrum (mu - pre_edge) / edge_step suitable for XANES and
// EXAFS analysis.
//
// # Usage
//
//	res, err := preedge.Normalize(energy, mu)
//	if err != nil {
//	    // handle ErrInsufficientData / ErrDegenerateStep
//	}
//	fmt.Println(res.E0, res.EdgeStep)
//	// res.Norm holds the normalized spectrum
//
// Fit windows, edge energy, edge step, polynomial degree and victoreen
// exponent can be overridden with options:
//
//	res, err := preedge.Normalize(energy, mu,
//	    preedge.WithE0(7112),
//	    preedge.WithNormRange(150, math.NaN()),
//	    preedge.WithPolyDegree(2),
//	)
//
// The computation is pure: no I/O, no shared state, inputs are never
// modified. Duplicate energy values and NaN/Inf samples are tolerated
// and corrected internally.
package preedge
