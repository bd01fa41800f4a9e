package preedge

import (
	"math"

	"github.com/cwbudde/algo-xafs/xafs/core"
)

// derivThresholdFrac selects candidate edge samples: a sample qualifies
// when its derivative exceeds this fraction of the maximum derivative.
const derivThresholdFrac = 0.05

// LocateEdge estimates the absorption edge energy from the derivative of
// mu with respect to energy.
//
// Candidate samples are those whose derivative exceeds 5% of the maximum
// derivative. Among candidates, the sample with the largest derivative
// whose immediate neighbors are also candidates wins; this local-support
// condition rejects single-sample spikes. When no candidate has support
// on both sides, the first sample's energy is returned as a documented
// fallback rather than an error.
func LocateEdge(energy, mu []float64) (float64, error) {
	if len(energy) != len(mu) || len(energy) < 2 {
		return 0, ErrMalformedInput
	}

	energy = core.RemoveDups(energy, 0, 0)

	return energy[locateEdgeIndex(energy, mu)], nil
}

// locateEdgeIndex implements the derivative search on already-sanitized
// arrays and returns the winning sample index.
func locateEdgeIndex(energy, mu []float64) int {
	dmu := core.Gradient(mu)
	de := core.Gradient(energy)

	maxDeriv := math.Inf(-1)
	for i := range dmu {
		dmu[i] /= de[i]
		if dmu[i] > maxDeriv {
			maxDeriv = dmu[i]
		}
	}

	threshold := maxDeriv * derivThresholdFrac

	candidate := make([]bool, len(dmu))
	for i := range dmu {
		candidate[i] = dmu[i] > threshold
	}

	best := 0
	bestDeriv := 0.0

	for i := 1; i+1 < len(dmu); i++ {
		if candidate[i] && candidate[i-1] && candidate[i+1] && dmu[i] > bestDeriv {
			best, bestDeriv = i, dmu[i]
		}
	}

	return best
}
