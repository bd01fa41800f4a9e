package preedge

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-xafs/internal/testutil"
)

func TestLocateEdgeFindsSupportedJump(t *testing.T) {
	energy := testutil.EnergyGrid(21, 0, 10)
	mu := testutil.EdgeSpectrum(energy, 100, 10, 1, 0.1, 0.001)

	e0, err := LocateEdge(energy, mu)
	if err != nil {
		t.Fatalf("LocateEdge: %v", err)
	}

	if e0 != 100 {
		t.Fatalf("edge energy: got %v want 100", e0)
	}
}

func TestLocateEdgeRejectsIsolatedSpike(t *testing.T) {
	// A single-sample step has no candidate with support on both sides,
	// so the locator falls back to the first sample's energy.
	energy := testutil.EnergyGrid(21, 0, 10)

	mu := make([]float64, len(energy))
	for i, e := range energy {
		mu[i] = 0.001 * e
		if e >= 100 {
			mu[i] += 1
		}
	}

	e0, err := LocateEdge(energy, mu)
	if err != nil {
		t.Fatalf("LocateEdge: %v", err)
	}

	if e0 != energy[0] {
		t.Fatalf("expected fallback to first sample, got %v", e0)
	}
}

func TestLocateEdgeMalformedInput(t *testing.T) {
	_, err := LocateEdge([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}

	_, err = LocateEdge([]float64{1}, []float64{1})
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput for single sample, got %v", err)
	}
}

func TestLocateEdgeFlatSignal(t *testing.T) {
	energy := testutil.EnergyGrid(10, 0, 10)
	mu := testutil.Flat(0, len(energy))

	e0, err := LocateEdge(energy, mu)
	if err != nil {
		t.Fatalf("LocateEdge: %v", err)
	}

	if e0 != energy[0] {
		t.Fatalf("flat signal should fall back to first sample, got %v", e0)
	}
}
