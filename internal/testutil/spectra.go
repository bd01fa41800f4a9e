// Package testutil provides synthetic spectra and float-slice assertions
// shared by the XAFS package tests.
package testutil

import "math"

// EnergyGrid returns n evenly spaced energies starting at start.
func EnergyGrid(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// EdgeSpectrum synthesizes an absorption spectrum with a smooth edge of
// the given height centered at center over a linear baseline:
//
//	mu(E) = offset + slope*E + height * (1 + tanh((E-center)/width)) / 2
//
// The tanh profile spreads the rise over a few samples so the derivative
// edge locator sees a supported maximum rather than an isolated spike.
func EdgeSpectrum(energy []float64, center, width, height, offset, slope float64) []float64 {
	mu := make([]float64, len(energy))
	for i, e := range energy {
		mu[i] = offset + slope*e + height*0.5*(1+math.Tanh((e-center)/width))
	}

	return mu
}

// Flat returns a constant-valued spectrum of length n.
func Flat(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}
