package spectral

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-resonance/field"
)

var (
	ErrEmptyInput    = errors.New("spectral: empty input")
	ErrZeroNorm      = errors.New("spectral: zero-norm vector")
	ErrNotPowerOfTwo = errors.New("spectral: length must be a power of two")
)

// normTolerance bounds the acceptable drift of the squared norm from 1
// after normalization.
const normTolerance = 1e-9

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Normalize scales v in place to unit Euclidean norm.
//
// Returns [ErrZeroNorm] if v has no nonzero entry; a zero vector has no
// direction and must not silently become NaNs. After the primary scaling
// the residual drift of the squared norm is corrected once more, so the
// output satisfies |Σv²−1| <= 1e-9 even for very long vectors.
func Normalize(v []float64) error {
	if len(v) == 0 {
		return ErrEmptyInput
	}

	energy := vecmath.DotProduct(v, v)
	if energy == 0 {
		return ErrZeroNorm
	}

	vecmath.ScaleBlockInPlace(v, 1/math.Sqrt(energy))

	// Accumulated rounding over 2^20 entries can push the squared norm
	// past tolerance; one corrective rescale restores it.
	residual := vecmath.DotProduct(v, v)
	if math.Abs(residual-1) > normTolerance {
		vecmath.ScaleBlockInPlace(v, 1/math.Sqrt(residual))
	}

	return nil
}

// Transform returns the unitary power spectrum of v.
//
// v is normalized to unit norm (on a copy; the input is not mutated),
// transformed with a forward FFT in natural frequency order, and reduced
// to squared magnitudes scaled by 1/N so the spectrum sums to 1.
//
// The length of v must be a power of two.
func Transform(v []float64) ([]float64, error) {
	if err := checkLength(len(v)); err != nil {
		return nil, err
	}

	u := make([]float64, len(v))
	copy(u, v)

	return transformInPlace(u)
}

// TransformField builds the indicator field for the given kind and
// returns its power spectrum.
//
// The field buffer is consumed by the transform, so at no point are the
// indicator vector, the complex working buffer, and the spectrum alive
// together. For n = 2^20 peak memory stays within one complex and two
// real buffers of length n.
func TransformField(n int, kind field.Kind) ([]float64, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}

	v, err := field.Build(n, kind)
	if err != nil {
		return nil, fmt.Errorf("spectral: build %s field: %w", kind, err)
	}

	return transformInPlace(v)
}

// transformInPlace consumes u: it is normalized in place and folded
// into the complex FFT buffer; u is dead past that point, so the
// collector can reclaim it while the transform runs.
func transformInPlace(u []float64) ([]float64, error) {
	if err := Normalize(u); err != nil {
		return nil, err
	}

	n := len(u)

	data := make([]complex128, n)
	for i, x := range u {
		data[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectral: fft plan: %w", err)
	}

	if err := plan.Forward(data, data); err != nil {
		return nil, fmt.Errorf("spectral: forward fft: %w", err)
	}

	return powerSpectrum(data), nil
}

// powerSpectrum computes |X[k]|²/N for an unnormalized forward FFT
// output, matching the unitary transform convention: a unit-norm input
// produces a spectrum with total mass 1.
func powerSpectrum(data []complex128) []float64 {
	n := len(data)
	out := make([]float64, n)

	re, im, buf := getScratch(n)
	for i, c := range data {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)

	vecmath.ScaleBlockInPlace(out, 1/float64(n))

	return out
}

func checkLength(n int) error {
	if n <= 0 {
		return ErrEmptyInput
	}

	if n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}

	return nil
}
