// Package field builds indicator vectors over integer index ranges:
// length-n vectors whose entry i is 1.0 when index i belongs to the
// selected predicate set (primes, perfect squares) and 0.0 otherwise.
// These vectors feed the spectral package as real-valued input fields.
package field

import "errors"

var (
	ErrInvalidLength = errors.New("field: length must be positive")
	ErrUnknownKind   = errors.New("field: unknown indicator kind")
)

// Kind selects the membership predicate of an indicator field.
type Kind int

const (
	// Prime marks prime indices. Indices 0 and 1 are never prime.
	Prime Kind = iota + 1
	// PerfectSquare marks indices of the form i*i for i >= 1.
	PerfectSquare
)

// String returns a human-readable predicate name.
func (k Kind) String() string {
	switch k {
	case Prime:
		return "prime"
	case PerfectSquare:
		return "perfect-square"
	default:
		return "unknown"
	}
}

// Build returns the indicator vector of length n for the given kind.
func Build(n int, kind Kind) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	switch kind {
	case Prime:
		return primes(n), nil
	case PerfectSquare:
		return perfectSquares(n), nil
	default:
		return nil, ErrUnknownKind
	}
}

// Count returns the number of marked indices in an indicator vector.
func Count(v []float64) int {
	count := 0
	for _, x := range v {
		if x != 0 {
			count++
		}
	}

	return count
}

// primes runs a sieve of Eratosthenes over [0, n). O(n log log n) time,
// O(n) scratch beyond the output.
func primes(n int) []float64 {
	isComposite := make([]bool, n)

	for i := 2; i*i < n; i++ {
		if isComposite[i] {
			continue
		}

		for j := i * i; j < n; j += i {
			isComposite[j] = true
		}
	}

	out := make([]float64, n)
	for i := 2; i < n; i++ {
		if !isComposite[i] {
			out[i] = 1.0
		}
	}

	return out
}

// perfectSquares marks i*i for every i in [1, floor(sqrt(n-1))].
// Index 0 is left unmarked.
func perfectSquares(n int) []float64 {
	out := make([]float64, n)

	for i := 1; i*i < n; i++ {
		out[i*i] = 1.0
	}

	return out
}
