package preedge

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-xafs/xafs/core"
)

// Result holds the outcome of pre-edge subtraction and normalization.
// The per-sample arrays all have the length of the input arrays.
type Result struct {
	E0       float64 // edge energy actually used, snapped to the nearest sample
	EdgeStep float64 // edge step used as the normalization denominator

	Norm     []float64 // normalized spectrum: (mu - PreEdge) / EdgeStep
	PreEdge  []float64 // pre-edge background line evaluated over all samples
	PostEdge []float64 // post-edge normalization curve evaluated over all samples

	PreCoefs  []float64 // pre-edge line coefficients, descending power order
	NormCoefs []float64 // post-edge polynomial coefficients, ascending power order

	PolyDegree int     // post-edge degree after clamping
	Victoreen  float64 // energy exponent used for the fits

	// Resolved fit-window bounds relative to E0, after defaulting and
	// clamping to the data extent.
	Pre1, Pre2   float64
	Norm1, Norm2 float64
}

// Normalize performs XAFS pre-edge subtraction and normalization on a
// measured spectrum.
//
// The pipeline sanitizes the energy grid, determines the edge energy
// when none is supplied (or the supplied one lies outside the data),
// fits a line below the edge and a low-degree polynomial above it in a
// victoreen-weighted basis, extrapolates both to the edge to obtain the
// edge step, and divides the pre-edge-subtracted signal by that step.
//
// The input slices are never modified; the de-duplication adjustment of
// the energy grid operates on an internal copy. Calls are independent
// and safe to run concurrently as long as inputs are not mutated.
//
// Errors: ErrMalformedInput for unequal or too-short arrays,
// ErrInsufficientData when a fit window degenerates, ErrDegenerateStep
// when the edge step is zero.
func Normalize(energy, mu []float64, opts ...Option) (Result, error) {
	cfg := applyOptions(opts...)

	if len(energy) != len(mu) {
		return Result{}, fmt.Errorf("%w: energy has %d samples, mu has %d",
			ErrMalformedInput, len(energy), len(mu))
	}

	if len(energy) < 2 {
		return Result{}, fmt.Errorf("%w: need at least 2 samples, got %d",
			ErrMalformedInput, len(energy))
	}

	energy = core.RemoveDups(energy, 0, 0)
	n := len(energy)

	e0 := cfg.E0
	if math.IsNaN(e0) || e0 < energy[0] || e0 > energy[n-1] {
		e0 = energy[locateEdgeIndex(energy, mu)]
	}

	ie0 := core.IndexNearest(energy, e0)
	e0 = energy[ie0]

	w := resolveWindows(energy, e0, cfg)

	// Victoreen basis: fits see mu(E)*E^n, curves come back divided by E^n.
	weight := make([]float64, n)
	invWeight := make([]float64, n)
	for i, e := range energy {
		weight[i] = math.Pow(e, cfg.Victoreen)
		invWeight[i] = math.Pow(e, -cfg.Victoreen)
	}

	weighted := make([]float64, n)
	vecmath.MulBlock(weighted, mu, weight)

	preCurve, preCoefs, err := fitBackground(energy, weighted, invWeight, w.preLo, w.preHi, 1)
	if err != nil {
		return Result{}, fmt.Errorf("pre-edge fit: %w", err)
	}

	postCurve, postCoefs, err := fitBackground(energy, weighted, invWeight, w.normLo, w.normHi, cfg.PolyDegree)
	if err != nil {
		return Result{}, fmt.Errorf("post-edge fit: %w", err)
	}

	step := cfg.Step
	if math.IsNaN(step) {
		step = postCurve[ie0] - preCurve[ie0]
	}

	if step == 0 {
		return Result{}, ErrDegenerateStep
	}

	norm := make([]float64, n)
	for i := range norm {
		norm[i] = mu[i] - preCurve[i]
	}

	vecmath.ScaleBlock(norm, norm, 1/step)

	normCoefs := make([]float64, len(postCoefs))
	for i, c := range postCoefs {
		normCoefs[len(postCoefs)-1-i] = c
	}

	return Result{
		E0:         e0,
		EdgeStep:   step,
		Norm:       norm,
		PreEdge:    preCurve,
		PostEdge:   postCurve,
		PreCoefs:   preCoefs,
		NormCoefs:  normCoefs,
		PolyDegree: cfg.PolyDegree,
		Victoreen:  cfg.Victoreen,
		Pre1:       w.pre1,
		Pre2:       w.pre2,
		Norm1:      w.norm1,
		Norm2:      w.norm2,
	}, nil
}
