package resonance

import (
	"errors"
	"math"
	"math/big"
)

var (
	ErrNegative  = errors.New("resonance: negative input")
	ErrPrecision = errors.New("resonance: precision too small for input magnitude")
	ErrParse     = errors.New("resonance: input is not a valid decimal integer")
)

// guardBits pads the binary working precision so decimal-to-binary
// conversion and the square root stay correctly rounded at the
// configured decimal precision.
const guardBits = 32

// minFractionDigits is the least number of decimal digits that must
// remain for the fractional part of the square root after its integer
// part consumed its share of the configured precision.
const minFractionDigits = 10

// Score computes the quadratic resonance score of the non-negative
// integer n: the arithmetic mean of cos(γ·δ) over the configured
// frequencies γ, where δ = |√n − nearest integer| evaluated at the
// configured decimal precision.
//
// The result lies in [-1, 1]. Perfect squares (including 0 and 1)
// score exactly 1.
func Score(n *big.Int, opts ...Option) (float64, error) {
	terms, err := Trace(n, opts...)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, c := range terms {
		sum += c
	}

	return sum / float64(len(terms)), nil
}

// ScoreString is [Score] for an integer given as a decimal string,
// preserving arbitrary magnitude exactly.
func ScoreString(s string, opts ...Option) (float64, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, ErrParse
	}

	return Score(n, opts...)
}

// Trace returns the per-frequency cosine terms cos(γ·δ) in the order
// the frequencies were configured. Score is the mean of these terms.
func Trace(n *big.Int, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)

	offset, err := phaseOffset(n, cfg.Digits)
	if err != nil {
		return nil, err
	}

	// Per-frequency products are formed at full precision; only the
	// cosine itself runs in float64. The two precision tiers are part
	// of the contract, not an optimization.
	terms := make([]float64, len(cfg.Frequencies))
	prod := new(big.Float).SetPrec(offset.Prec())

	for i, gamma := range cfg.Frequencies {
		prod.SetFloat64(gamma)
		prod.Mul(prod, offset)

		phase, _ := prod.Float64()
		terms[i] = math.Cos(phase)
	}

	return terms, nil
}

// Normalized remaps a score from [-1, 1] to [0, 1] via (s+1)/2.
//
// The raw score is reported unbounded below zero on purpose; this remap
// is a separate, explicit step for callers that want a probability-like
// reading.
func Normalized(score float64) float64 {
	return (score + 1) / 2
}

// phaseOffset computes δ = |√n − nearest integer| at the given decimal
// precision. Ties round half up, away from zero. The result lies in
// [0, 0.5] and carries the full working precision.
func phaseOffset(n *big.Int, digits int) (*big.Float, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}

	// The integer part of √n consumes about half the digits of n; the
	// configured precision must leave room for a meaningful fraction.
	rootDigits := (len(n.Text(10)) + 1) / 2
	if digits < rootDigits+minFractionDigits {
		return nil, ErrPrecision
	}

	prec := uint(math.Ceil(float64(digits)*math.Log2(10))) + guardBits

	root := new(big.Float).SetPrec(prec).SetInt(n)
	root.Sqrt(root)

	// Split off the integer part; frac lands in [0, 1).
	intPart, _ := root.Int(nil)

	frac := new(big.Float).SetPrec(prec).SetInt(intPart)
	frac.Sub(root, frac)

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	if frac.Cmp(half) >= 0 {
		// Nearest integer is above: δ = 1 − frac.
		one := new(big.Float).SetPrec(prec).SetInt64(1)
		frac.Sub(one, frac)
	}

	return frac, nil
}
