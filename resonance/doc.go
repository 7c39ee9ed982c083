// Package resonance computes a quadratic resonance score for large
// integers: a bounded measure of how close an integer's square root lies
// to a whole number, aggregated across a comb of reference frequencies.
//
// The score is the arithmetic mean of cos(γ·δ) over the configured
// frequencies γ, where δ is the phase offset — the absolute distance
// between the high-precision square root of the input and its nearest
// integer. Perfect squares have δ = 0 and score exactly 1. Semiprimes
// whose factors are close together sit near a perfect square and score
// close to 1; composites with well-separated factors produce an
// effectively arbitrary δ and a much lower score.
//
// The computation is deliberately split across two precision tiers: the
// square root and phase offset are evaluated in arbitrary precision
// (math/big, configurable decimal digits), while the cosine terms are
// evaluated in float64. Collapsing the tiers changes the output and is
// not equivalent.
//
// # Usage
//
// Score a large composite given as a decimal string:
//
//	score, err := resonance.ScoreString("10000000000000000000000000000000000016" +
//	    "00000000000000000000000000000000063")
//	if err != nil {
//	    // handle
//	}
//
// The default configuration uses 100 decimal digits of precision and the
// first five Riemann zeta zero ordinates as frequencies. Both are
// adjustable per call:
//
//	score, err := resonance.Score(n,
//	    resonance.WithDigits(200),
//	    resonance.WithFrequencies(resonance.ExtendedFrequencies),
//	)
//
// Scores live in [-1, 1]. Use [Normalized] for an explicit [0, 1] remap.
package resonance
