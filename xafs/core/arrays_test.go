package core

import (
	"math"
	"testing"
)

func TestRemoveDupsPerturbsRepeatedValues(t *testing.T) {
	in := []float64{0, 1.1, 2.2, 2.2, 3.3}

	out := RemoveDups(in, 0, 0)

	// The first of the repeated pair moves down by frac*|2.2-1.1| = 0.022.
	want := 2.2 - 0.02*math.Abs(2.2-1.1)
	if math.Abs(out[2]-want) > 1e-12 {
		t.Fatalf("perturbed value mismatch: got %v want %v", out[2], want)
	}

	for _, i := range []int{0, 1, 3, 4} {
		if out[i] != in[i] {
			t.Fatalf("index %d changed: got %v want %v", i, out[i], in[i])
		}
	}

	if in[2] != 2.2 {
		t.Fatalf("input was mutated: %v", in)
	}
}

func TestRemoveDupsNoOpOnCleanInput(t *testing.T) {
	in := []float64{1, 2, 3, 4.5, 10}

	out := RemoveDups(in, 0, 0)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("clean input changed at %d: got %v want %v", i, out[i], in[i])
		}
	}

	again := RemoveDups(out, 0, 0)
	for i := range out {
		if again[i] != out[i] {
			t.Fatalf("not idempotent at %d: got %v want %v", i, again[i], out[i])
		}
	}
}

func TestRemoveDupsSinglePassLimitation(t *testing.T) {
	// Three identical values: the single pass perturbs indices 0 and 1 by
	// the same amount, leaving them duplicated. This pins the documented
	// limitation of the one-pass adjustment.
	out := RemoveDups([]float64{0, 0, 0}, 0, 0)

	if out[0] != out[1] {
		t.Fatalf("expected residual duplicate pair, got %v", out)
	}

	if out[2] != 0 {
		t.Fatalf("last value should be untouched, got %v", out)
	}
}

func TestRemoveInvalidPairing(t *testing.T) {
	a := []float64{0, math.NaN(), 2, 3, math.Inf(1), 5}
	b := []float64{10, 11, 12, math.Inf(-1), 14, 15}

	aOut, bOut := RemoveInvalid(a, b)

	if len(aOut) != len(bOut) {
		t.Fatalf("length mismatch: %d vs %d", len(aOut), len(bOut))
	}

	wantA := []float64{0, 2, 5}
	wantB := []float64{10, 12, 15}

	if len(aOut) != len(wantA) {
		t.Fatalf("retained %d samples, want %d: %v", len(aOut), len(wantA), aOut)
	}

	for i := range wantA {
		if aOut[i] != wantA[i] || bOut[i] != wantB[i] {
			t.Fatalf("pair %d: got (%v, %v) want (%v, %v)", i, aOut[i], bOut[i], wantA[i], wantB[i])
		}
	}
}

func TestRemoveInvalidCleanPassthrough(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	aOut, bOut := RemoveInvalid(a, b)

	if &aOut[0] != &a[0] || &bOut[0] != &b[0] {
		t.Fatal("clean inputs should be returned without copying")
	}
}

func TestIndexOf(t *testing.T) {
	values := []float64{0, 10, 20, 30, 40}

	cases := []struct {
		x    float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{9.99, 0},
		{10, 1},
		{25, 2},
		{40, 4},
		{1000, 4},
	}

	for _, tc := range cases {
		if got := IndexOf(values, tc.x); got != tc.want {
			t.Fatalf("IndexOf(%v) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestIndexNearest(t *testing.T) {
	values := []float64{0, 10, 20, 30, 40}

	cases := []struct {
		x    float64
		want int
	}{
		{-100, 0},
		{4.9, 0},
		{5, 0}, // tie resolves to the first index
		{5.1, 1},
		{26, 3},
		{100, 4},
	}

	for _, tc := range cases {
		if got := IndexNearest(values, tc.x); got != tc.want {
			t.Fatalf("IndexNearest(%v) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestGradient(t *testing.T) {
	out := Gradient([]float64{0, 10, 20, 30})
	for i, v := range out {
		if v != 10 {
			t.Fatalf("linear gradient at %d: got %v want 10", i, v)
		}
	}

	out = Gradient([]float64{0, 1, 4})
	want := []float64{1, 2, 3}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("gradient at %d: got %v want %v", i, out[i], want[i])
		}
	}

	if Gradient([]float64{1}) != nil {
		t.Fatal("gradient of a single sample should be nil")
	}
}
