package resonance

// ReferenceFrequencies holds the default frequency comb: the imaginary
// parts of the first five non-trivial Riemann zeta zeros.
var ReferenceFrequencies = []float64{
	14.134725,
	21.022040,
	25.010857,
	30.424876,
	32.935061,
}

// ExtendedFrequencies holds the ordinates of the first thirty
// non-trivial Riemann zeta zeros, for callers wanting a wider comb.
var ExtendedFrequencies = []float64{
	14.13, 21.02, 25.01, 30.42, 32.93, 37.58, 40.91, 43.32, 48.00, 49.77,
	52.97, 56.44, 59.34, 60.83, 65.11, 67.07, 69.54, 72.06, 75.70, 77.14,
	79.33, 82.91, 84.73, 87.42, 88.80, 92.49, 94.65, 95.87, 98.83, 101.3,
}

// Config defines scoring parameters.
type Config struct {
	// Digits is the decimal precision used for the square-root step.
	Digits int
	// Frequencies is the reference frequency comb. Order is preserved
	// in [Trace] output.
	Frequencies []float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: 100 decimal digits and the
// five canonical reference frequencies.
func DefaultConfig() Config {
	return Config{
		Digits:      100,
		Frequencies: ReferenceFrequencies,
	}
}

// WithDigits sets the decimal precision of the square-root step.
func WithDigits(digits int) Option {
	return func(cfg *Config) {
		if digits > 0 {
			cfg.Digits = digits
		}
	}
}

// WithFrequencies replaces the reference frequency comb. The slice is
// copied so later caller mutation cannot affect the computation.
func WithFrequencies(frequencies []float64) Option {
	return func(cfg *Config) {
		if len(frequencies) > 0 {
			cfg.Frequencies = append([]float64(nil), frequencies...)
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
