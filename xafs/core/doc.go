// Package core provides shared numeric and array primitives for XAFS
// processing: monotonic-array sanitization, index lookups with the exact
// rounding semantics the fitting packages depend on, and a discrete
// gradient.
//
// Measured energy grids are messy: acquisition software emits repeated
// energy values, detector glitches produce NaN or Inf samples, and
// callers supply fit boundaries that rarely coincide with grid points.
// The helpers here handle those cases once so the fitting code can assume
// clean, strictly increasing input.
package core
