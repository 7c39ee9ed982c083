// Package stats computes descriptive statistics over power spectra
// produced by the spectral package. The frequency axis is the bin index
// itself; all values are dimensionless.
package stats

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds summary statistics of a power spectrum.
type Stats struct {
	BinCount int
	DC       float64 // bin 0 mass
	Total    float64 // sum of all bins, ~1 for unitary spectra
	Max      float64
	MaxBin   int
	Min      float64
	MinBin   int
	Mean     float64
	// Spectral shape descriptors
	Centroid      float64 // mass-weighted mean bin index
	Spread        float64 // mass-weighted standard deviation around the centroid
	Flatness      float64 // Wiener entropy over bins 1..N-1, 0..1
	Concentration float64 // fraction of total mass in the top decile of bins
}

// Calculate computes all statistics for a power spectrum (non-negative
// values, linear scale).
func Calculate(spectrum []float64) Stats {
	n := len(spectrum)
	if n == 0 {
		return Stats{}
	}

	var s Stats
	s.BinCount = n
	s.DC = spectrum[0]
	s.Total = vecmath.Sum(spectrum)
	s.Mean = s.Total / float64(n)

	s.Min = spectrum[0]
	s.Max = spectrum[0]
	for i, x := range spectrum {
		if x > s.Max {
			s.Max = x
			s.MaxBin = i
		}
		if x < s.Min {
			s.Min = x
			s.MinBin = i
		}
	}

	if n == 1 {
		return s
	}

	s.Centroid = centroid(spectrum, s.Total)
	s.Spread = spread(spectrum, s.Centroid, s.Total)
	s.Flatness = flatness(spectrum)
	s.Concentration = concentration(spectrum, s.Total)

	return s
}

// Centroid returns the mass-weighted mean bin index.
//
//	centroid = sum(i * p_i) / sum(p_i)
func Centroid(spectrum []float64) float64 {
	if len(spectrum) < 2 {
		return 0
	}

	return centroid(spectrum, vecmath.Sum(spectrum))
}

func centroid(spectrum []float64, total float64) float64 {
	if total == 0 {
		return 0
	}

	weighted := 0.0
	for i, x := range spectrum {
		weighted += float64(i) * x
	}

	return weighted / total
}

func spread(spectrum []float64, cent, total float64) float64 {
	if total == 0 {
		return 0
	}

	weighted := 0.0
	for i, x := range spectrum {
		diff := float64(i) - cent
		weighted += diff * diff * x
	}

	return math.Sqrt(weighted / total)
}

// Flatness returns the spectral flatness (Wiener entropy) in 0..1.
//
// Flatness = exp(mean(log(p_i))) / mean(p_i)
//
// Bin 0 is excluded. A spectrum with any zero bin has geometric mean
// zero, hence flatness zero.
func Flatness(spectrum []float64) float64 {
	return flatness(spectrum)
}

func flatness(spectrum []float64) float64 {
	n := len(spectrum)
	if n < 2 {
		return 0
	}

	bins := n - 1
	sumLin := 0.0
	sumLog := 0.0
	hasZero := false

	for i := 1; i < n; i++ {
		x := spectrum[i]
		sumLin += x
		if x > 0 {
			sumLog += math.Log(x)
		} else {
			hasZero = true
		}
	}

	meanLin := sumLin / float64(bins)
	if meanLin == 0 || hasZero {
		return 0
	}

	return math.Exp(sumLog/float64(bins)) / meanLin
}

// Concentration returns the fraction of total spectral mass held by the
// largest tenth of the bins. A flat spectrum scores ~0.1; a spectrum
// dominated by a few lines approaches 1.
func Concentration(spectrum []float64) float64 {
	if len(spectrum) == 0 {
		return 0
	}

	return concentration(spectrum, vecmath.Sum(spectrum))
}

func concentration(spectrum []float64, total float64) float64 {
	n := len(spectrum)
	if n == 0 || total == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, spectrum)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	top := (n + 9) / 10
	mass := vecmath.Sum(sorted[:top])

	return mass / total
}
