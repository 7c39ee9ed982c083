// Package spectral turns real-valued indicator fields into unitary power
// spectra: the input is scaled to unit Euclidean norm, transformed with a
// fast Fourier transform in natural (non-bit-reversed) frequency order,
// and reduced to squared magnitudes scaled so the spectrum sums to 1.
//
// The transform is unitary, so a unit-norm input yields a spectrum whose
// total mass is 1 up to floating-point error. This makes spectra of
// different fields directly comparable as probability-like distributions.
//
// # Usage
//
// Transform an existing vector:
//
//	spectrum, err := spectral.Transform(v)
//
// Or run the fused field pipeline, which never keeps the indicator
// vector and the complex working buffer alive at the same time:
//
//	spectrum, err := spectral.TransformField(1<<20, field.Prime)
//
// The primary path requires power-of-two lengths and rejects anything
// else with [ErrNotPowerOfTwo]. Zero vectors cannot be normalized and
// are rejected with [ErrZeroNorm] rather than producing NaNs.
package spectral
