package preedge

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-xafs/internal/polyfit"
	"github.com/cwbudde/algo-xafs/xafs/core"
)

// fitBackground fits a least-squares polynomial of the given degree to
// the victoreen-weighted signal inside the half-open index window
// [lo, hi), then evaluates the fit across the full energy array and
// undoes the weighting, producing a background curve spanning the whole
// spectrum.
//
// NaN/Inf samples inside the window are removed pairwise before fitting.
// If fewer than degree+1 usable points remain, the fit fails with
// ErrInsufficientData.
func fitBackground(energy, weighted, invWeight []float64, lo, hi, degree int) ([]float64, []float64, error) {
	ex, sx := core.RemoveInvalid(energy[lo:hi], weighted[lo:hi])

	if len(ex) < degree+1 {
		return nil, nil, fmt.Errorf("%w: %d usable points in [%d,%d) for degree %d",
			ErrInsufficientData, len(ex), lo, hi, degree)
	}

	coefs, err := polyfit.Fit(ex, sx, degree)
	if err != nil {
		if errors.Is(err, polyfit.ErrUnderdetermined) {
			err = ErrInsufficientData
		}

		return nil, nil, fmt.Errorf("preedge: background fit: %w", err)
	}

	curve := make([]float64, len(energy))
	for i, e := range energy {
		curve[i] = polyfit.Eval(coefs, e)
	}

	vecmath.MulBlockInPlace(curve, invWeight)

	return curve, coefs, nil
}
