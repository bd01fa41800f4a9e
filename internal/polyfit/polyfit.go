// Package polyfit provides dense least-squares polynomial fitting shared
// by the public XAFS packages. Coefficients use descending power order,
// matching the common numerical-library convention.
package polyfit

import (
	"errors"
	"math"
)

// Errors returned by fitting functions.
var (
	// ErrUnderdetermined is returned when fewer points than coefficients
	// are supplied.
	ErrUnderdetermined = errors.New("polyfit: fewer points than coefficients")

	// ErrSingular is returned when the normal equations are numerically
	// singular, typically because all x values coincide.
	ErrSingular = errors.New("polyfit: singular system")

	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("polyfit: x and y length mismatch")

	// ErrInvalidDegree is returned for a negative polynomial degree.
	ErrInvalidDegree = errors.New("polyfit: degree must be >= 0")
)

// Fit computes the least-squares polynomial of the given degree through
// the points (x[i], y[i]) and returns its degree+1 coefficients in
// descending power order.
//
// The fit solves the normal equations of the Vandermonde system with
// Gaussian elimination and partial pivoting. For the small degrees used
// in background fitting (<= 5) this is accurate and allocation-light; it
// is not meant for high-degree fits where an orthogonal decomposition
// would be required for stability.
func Fit(x, y []float64, degree int) ([]float64, error) {
	if degree < 0 {
		return nil, ErrInvalidDegree
	}

	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	m := degree + 1
	if len(x) < m {
		return nil, ErrUnderdetermined
	}

	// Accumulate the normal equations A^T*A (via power sums) and A^T*y.
	// sums[k] holds sum(x^k) for k in [0, 2*degree].
	sums := make([]float64, 2*degree+1)
	rhs := make([]float64, m)

	for i := range x {
		p := 1.0
		for k := 0; k <= 2*degree; k++ {
			sums[k] += p
			if k < m {
				rhs[k] += p * y[i]
			}
			p *= x[i]
		}
	}

	mat := make([][]float64, m)
	for r := range m {
		mat[r] = make([]float64, m+1)
		for c := range m {
			mat[r][c] = sums[r+c]
		}
		mat[r][m] = rhs[r]
	}

	ascending, err := solve(mat)
	if err != nil {
		return nil, err
	}

	// solve yields coefficients for ascending powers; reverse to the
	// descending convention.
	coefs := make([]float64, m)
	for i := range m {
		coefs[i] = ascending[m-1-i]
	}

	return coefs, nil
}

// Eval evaluates a polynomial with descending-order coefficients at x
// using Horner's method. Empty coefficients evaluate to 0.
func Eval(coefs []float64, x float64) float64 {
	acc := 0.0
	for _, c := range coefs {
		acc = acc*x + c
	}

	return acc
}

// solve performs in-place Gaussian elimination with partial pivoting on
// an augmented matrix [A | b] and returns the solution vector.
func solve(mat [][]float64) ([]float64, error) {
	n := len(mat)

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(mat[r][col]) > math.Abs(mat[pivot][col]) {
				pivot = r
			}
		}

		if mat[pivot][col] == 0 {
			return nil, ErrSingular
		}

		mat[col], mat[pivot] = mat[pivot], mat[col]

		for r := col + 1; r < n; r++ {
			f := mat[r][col] / mat[col][col]
			for c := col; c <= n; c++ {
				mat[r][c] -= f * mat[col][c]
			}
		}
	}

	out := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		acc := mat[r][n]
		for c := r + 1; c < n; c++ {
			acc -= mat[r][c] * out[c]
		}
		out[r] = acc / mat[r][r]
	}

	return out, nil
}
