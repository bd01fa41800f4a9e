package core

import "math"

const (
	// DefaultTiny is the smallest expected absolute interval between
	// successive samples of a monotonically increasing array.
	DefaultTiny = 1e-8

	// DefaultFrac is the smallest expected fractional interval used when
	// perturbing duplicate samples.
	DefaultFrac = 0.02
)

// RemoveDups returns a copy of values with repeated successive entries
// perturbed apart. The input is expected to be monotonically increasing;
// for each adjacent pair closer than tiny, the first element (at index i)
// is reduced by the largest of:
//
//	tiny, frac*|values[i]-values[i-1]|, frac*|values[i+1]-values[i]|
//
// Non-positive tiny or frac select DefaultTiny and DefaultFrac.
//
// This is a single pass, not a fixed-point iteration: a pathological
// run of three or more near-equal samples can still leave a near-duplicate
// pair after adjustment. Callers that need strict separation must check
// the result.
func RemoveDups(values []float64, tiny, frac float64) []float64 {
	if tiny <= 0 {
		tiny = DefaultTiny
	}

	if frac <= 0 {
		frac = DefaultFrac
	}

	out := make([]float64, len(values))
	copy(out, values)

	for i := 0; i+1 < len(out); i++ {
		if math.Abs(out[i]-out[i+1]) >= tiny {
			continue
		}

		dx := tiny
		if i > 0 {
			if d := frac * math.Abs(out[i]-out[i-1]); d > dx {
				dx = d
			}
		}

		if d := frac * math.Abs(out[i+1]-out[i]); d > dx {
			dx = d
		}

		out[i] -= dx
	}

	return out
}

// RemoveInvalid removes every index at which either a or b holds a NaN or
// infinite value, symmetrically from both arrays, preserving order. The
// two arrays must have equal length. When no invalid entries exist the
// inputs are returned as-is.
func RemoveInvalid(a, b []float64) ([]float64, []float64) {
	clean := true

	for i := range a {
		if !isFinite(a[i]) || !isFinite(b[i]) {
			clean = false
			break
		}
	}

	if clean {
		return a, b
	}

	aOut := make([]float64, 0, len(a))
	bOut := make([]float64, 0, len(b))

	for i := range a {
		if isFinite(a[i]) && isFinite(b[i]) {
			aOut = append(aOut, a[i])
			bOut = append(bOut, b[i])
		}
	}

	return aOut, bOut
}

// IndexOf returns the largest index whose value is at or below x.
// Returns 0 if x is below the first element. The array must be sorted
// ascending.
func IndexOf(values []float64, x float64) int {
	idx := 0

	for i := range values {
		if values[i] <= x {
			idx = i
		}
	}

	return idx
}

// IndexNearest returns the index whose value is nearest to x, taking the
// first index on ties.
func IndexNearest(values []float64, x float64) int {
	idx := 0
	best := math.Inf(1)

	for i, v := range values {
		if d := math.Abs(v - x); d < best {
			best = d
			idx = i
		}
	}

	return idx
}

// Gradient computes the discrete gradient of values with unit spacing:
// central differences for interior points and one-sided differences at
// the ends. Requires at least two samples; shorter input yields nil.
func Gradient(values []float64) []float64 {
	n := len(values)
	if n < 2 {
		return nil
	}

	out := make([]float64, n)
	out[0] = values[1] - values[0]
	out[n-1] = values[n-1] - values[n-2]

	for i := 1; i < n-1; i++ {
		out[i] = (values[i+1] - values[i-1]) / 2
	}

	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
