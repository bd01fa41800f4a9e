package preedge

import "errors"

// Errors returned by the normalization pipeline.
var (
	// ErrMalformedInput indicates energy/mu arrays of unequal length or
	// with fewer than two samples.
	ErrMalformedInput = errors.New("preedge: malformed input arrays")

	// ErrInsufficientData indicates a fit window that, after removing
	// invalid samples, holds fewer points than the requested polynomial
	// degree needs. The fit is never silently downgraded to a lower
	// degree.
	ErrInsufficientData = errors.New("preedge: insufficient data in fit window")

	// ErrDegenerateStep indicates an edge step of exactly zero, for which
	// the normalized spectrum is undefined.
	ErrDegenerateStep = errors.New("preedge: degenerate edge step")
)
