package preedge

import (
	"math"

	"github.com/cwbudde/algo-xafs/xafs/core"
)

// windows holds the resolved fit-window bounds. The energy bounds are
// relative to E0 after defaulting and clamping; the index ranges are
// half-open [lo, hi) into the energy array.
type windows struct {
	pre1, pre2   float64
	norm1, norm2 float64

	preLo, preHi   int
	normLo, normHi int
}

// resolveWindows turns the configured relative fit-window bounds into
// clamped relative energies and array index ranges.
//
// The lower bound of each window maps to the largest index at or below
// the bound, while the upper bound maps to the nearest index. The
// asymmetry is deliberate: it biases the lower bound search outward so a
// bound just below a grid point still includes it, while the upper bound
// snaps to the closest sample. Unifying the two rules would shift the
// fitted windows and change the numeric results.
func resolveWindows(energy []float64, e0 float64, cfg Config) windows {
	emin := energy[0]
	emax := energy[len(energy)-1]

	pre1 := cfg.Pre1
	if math.IsNaN(pre1) {
		pre1 = emin - e0
	}

	norm2 := cfg.Norm2
	switch {
	case math.IsNaN(norm2):
		norm2 = emax - e0
	case norm2 < 0:
		// Negative values count down from the top of the data range.
		norm2 = emax - e0 - norm2
	}

	pre1 = math.Max(pre1, emin-e0)
	norm2 = math.Min(norm2, emax-e0)

	pre2 := cfg.Pre2
	if pre1 > pre2 {
		pre1, pre2 = pre2, pre1
	}

	norm1 := cfg.Norm1
	if norm1 > norm2 {
		norm1, norm2 = norm2, norm1
	}

	w := windows{pre1: pre1, pre2: pre2, norm1: norm1, norm2: norm2}

	w.preLo, w.preHi = windowIndices(energy, pre1+e0, pre2+e0)
	w.normLo, w.normHi = windowIndices(energy, norm1+e0, norm2+e0)

	return w
}

// windowIndices resolves absolute energy bounds to a half-open index
// range spanning at least two samples (clamped to the array length).
func windowIndices(energy []float64, lo, hi float64) (int, int) {
	p1 := core.IndexOf(energy, lo)
	p2 := core.IndexNearest(energy, hi)

	if p2-p1 < 2 {
		p2 = min(len(energy), p1+2)
	}

	return p1, p2
}
