package preedge

import (
	"math"

	"github.com/cwbudde/algo-xafs/xafs/core"
)

const (
	defaultPre2  = -50.0
	defaultNorm1 = 100.0

	minPolyDegree = 1
	maxPolyDegree = 5
)

// Config holds normalization parameters. Fit-window bounds are energies
// relative to the edge energy E0; NaN marks an optional value as unset.
type Config struct {
	E0         float64 // edge energy in eV; NaN derives it from the derivative
	Step       float64 // edge step; NaN derives it from the background fits
	Pre1       float64 // low bound of the pre-edge fit window; NaN extends to the data minimum
	Pre2       float64 // high bound of the pre-edge fit window
	Norm1      float64 // low bound of the post-edge fit window
	Norm2      float64 // high bound of the post-edge fit window; NaN extends to the data maximum
	PolyDegree int     // post-edge polynomial degree, clamped to [1, 5]
	Victoreen  float64 // energy exponent applied to the signal before fitting
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the standard pre-edge parameters: pre-edge window
// from the data minimum to 50 eV below the edge, post-edge window from
// 100 eV above the edge to the data maximum, cubic post-edge polynomial,
// no victoreen weighting.
func DefaultConfig() Config {
	return Config{
		E0:         math.NaN(),
		Step:       math.NaN(),
		Pre1:       math.NaN(),
		Pre2:       defaultPre2,
		Norm1:      defaultNorm1,
		Norm2:      math.NaN(),
		PolyDegree: 3,
	}
}

// WithE0 supplies the edge energy in eV.
//
// A supplied value outside the span of the sanitized energy array is
// treated as recoverable: it is silently replaced by the derivative-based
// estimate rather than rejected, so a stale tabulated value never aborts
// the pipeline.
func WithE0(e0 float64) Option {
	return func(cfg *Config) {
		cfg.E0 = e0
	}
}

// WithStep supplies the edge step, bypassing the fitted estimate. A zero
// step still fails with ErrDegenerateStep.
func WithStep(step float64) Option {
	return func(cfg *Config) {
		cfg.Step = step
	}
}

// WithPreRange sets the pre-edge fit window bounds relative to E0.
// Pass NaN for lo to keep the default (extend to the data minimum).
func WithPreRange(lo, hi float64) Option {
	return func(cfg *Config) {
		cfg.Pre1 = lo
		if !math.IsNaN(hi) {
			cfg.Pre2 = hi
		}
	}
}

// WithNormRange sets the post-edge fit window bounds relative to E0.
// Pass NaN for hi to keep the default (extend to the data maximum). A
// negative hi is reinterpreted as an offset below the data maximum:
// the resolved bound becomes max(energy) - E0 - hi.
func WithNormRange(lo, hi float64) Option {
	return func(cfg *Config) {
		if !math.IsNaN(lo) {
			cfg.Norm1 = lo
		}
		cfg.Norm2 = hi
	}
}

// WithPolyDegree sets the post-edge polynomial degree. Values outside
// [1, 5] are clamped.
func WithPolyDegree(degree int) Option {
	return func(cfg *Config) {
		cfg.PolyDegree = degree
	}
}

// WithVictoreen sets the energy exponent n: both fits operate on
// mu(E)*E^n and the resulting curves are divided by E^n again. This can
// stabilize fits over wide energy ranges.
func WithVictoreen(exponent float64) Option {
	return func(cfg *Config) {
		cfg.Victoreen = exponent
	}
}

// applyOptions applies zero or more options to the default config and
// clamps dependent values.
func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	cfg.PolyDegree = core.ClampInt(cfg.PolyDegree, minPolyDegree, maxPolyDegree)

	return cfg
}
