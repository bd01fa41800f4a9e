package polyfit

import (
	"errors"
	"math"
	"testing"
)

func TestFitRecoversLine(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2.5*xi - 1.25
	}

	coefs, err := Fit(x, y, 1)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if math.Abs(coefs[0]-2.5) > 1e-10 || math.Abs(coefs[1]+1.25) > 1e-10 {
		t.Fatalf("coefficient mismatch: %v", coefs)
	}
}

func TestFitRecoversCubic(t *testing.T) {
	want := []float64{0.5, -2, 3, 7} // 0.5x^3 - 2x^2 + 3x + 7

	x := []float64{-2, -1, 0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = Eval(want, xi)
	}

	coefs, err := Fit(x, y, 3)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	for i := range want {
		if math.Abs(coefs[i]-want[i]) > 1e-8 {
			t.Fatalf("coefficient %d: got %v want %v", i, coefs[i], want[i])
		}
	}
}

func TestFitLeastSquaresResidual(t *testing.T) {
	// Four points not on a common line: the degree-1 fit must minimize
	// the squared residual, giving y = 0.8x + 0.3 for this arrangement.
	x := []float64{0, 1, 2, 3}
	y := []float64{0.5, 0.5, 2.5, 2.5}

	coefs, err := Fit(x, y, 1)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if math.Abs(coefs[0]-0.8) > 1e-10 || math.Abs(coefs[1]-0.3) > 1e-10 {
		t.Fatalf("least-squares line mismatch: %v", coefs)
	}
}

func TestFitErrors(t *testing.T) {
	_, err := Fit([]float64{1, 2}, []float64{1, 2}, 2)
	if !errors.Is(err, ErrUnderdetermined) {
		t.Fatalf("expected ErrUnderdetermined, got %v", err)
	}

	_, err = Fit([]float64{1, 1, 1}, []float64{1, 2, 3}, 1)
	if !errors.Is(err, ErrSingular) {
		t.Fatalf("expected ErrSingular, got %v", err)
	}

	_, err = Fit([]float64{1, 2}, []float64{1}, 1)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	_, err = Fit([]float64{1, 2}, []float64{1, 2}, -1)
	if !errors.Is(err, ErrInvalidDegree) {
		t.Fatalf("expected ErrInvalidDegree, got %v", err)
	}
}

func TestEval(t *testing.T) {
	coefs := []float64{2, -3, 4} // 2x^2 - 3x + 4

	if got := Eval(coefs, 0); got != 4 {
		t.Fatalf("Eval at 0: got %v want 4", got)
	}

	if got := Eval(coefs, 2); got != 6 {
		t.Fatalf("Eval at 2: got %v want 6", got)
	}

	if got := Eval(nil, 3); got != 0 {
		t.Fatalf("Eval with no coefficients: got %v want 0", got)
	}
}
