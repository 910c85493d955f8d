package histboost

import "fmt"

// Config describes one node-splitting problem: a binned feature
// matrix plus the per-feature metadata and regularization knobs a
// Splitter needs to search it. A Config is built once per tree (the
// binned matrix does not change across nodes of the same tree) and
// is read-only for the lifetime of the Splitter built from it.
type Config struct {
	// Binned is the column-major binned feature matrix, length
	// NSamples*NFeatures. Column f occupies Binned[f*NSamples:(f+1)*NSamples].
	Binned []uint8

	// NSamples is the number of rows in Binned.
	NSamples int

	// NFeatures is the number of columns in Binned.
	NFeatures int

	// NBinsNonMissing[f] is the number of real (non-missing) bins for
	// feature f.
	NBinsNonMissing []int

	// MissingValuesBinIdx is the reserved bin code shared by every
	// feature for true missing values and, for categorical features,
	// unseen categories. Always MaxBins-1 in the fitted sense, but
	// callers may use any value >= max(NBinsNonMissing).
	MissingValuesBinIdx uint8

	// HasMissingValues[f] indicates whether feature f's column
	// contains at least one sample binned to MissingValuesBinIdx.
	HasMissingValues []bool

	// IsCategorical[f] indicates feature f is split as a set of
	// categories rather than a numeric threshold.
	IsCategorical []bool

	// MonotonicConstraints[f] is +1 (non-decreasing), -1
	// (non-increasing), or 0 (unconstrained).
	MonotonicConstraints []int8

	// L2Regularization is lambda in the value/gain formulas.
	L2Regularization float64

	// MinHessianToSplit is the minimum summed hessian a child must
	// have for a split to be admissible. NewSplitter applies no
	// default: the zero value 0 is used as given.
	MinHessianToSplit float64

	// MinSamplesLeaf is the minimum sample count a child must have
	// for a split to be admissible. NewSplitter applies no default:
	// the zero value 0 is used as given.
	MinSamplesLeaf int

	// MinGainToSplit is the minimum gain a split must exceed to be
	// recorded. The zero value 0 is used as given.
	MinGainToSplit float64

	// HessiansAreConstant indicates the loss has constant curvature
	// (squared error): histogram sum_hessians fields are unused and
	// synthesized from count instead.
	HessiansAreConstant bool
}

// validate checks the boundary preconditions required for splitter
// construction. It never runs inside a parallel region.
func (c *Config) validate() error {
	if c.NSamples < 0 || c.NFeatures < 0 {
		return &ConfigError{Err: ErrDimensionMismatch, Detail: "NSamples and NFeatures must be non-negative"}
	}
	if len(c.Binned) != c.NSamples*c.NFeatures {
		return &ConfigError{
			Err: ErrDimensionMismatch,
			Detail: fmt.Sprintf("Binned has length %d, want NSamples*NFeatures=%d",
				len(c.Binned), c.NSamples*c.NFeatures),
		}
	}
	for name, got := range map[string]int{
		"NBinsNonMissing":      len(c.NBinsNonMissing),
		"HasMissingValues":     len(c.HasMissingValues),
		"IsCategorical":        len(c.IsCategorical),
		"MonotonicConstraints": len(c.MonotonicConstraints),
	} {
		if got != c.NFeatures {
			return &ConfigError{
				Err:    ErrDimensionMismatch,
				Detail: fmt.Sprintf("%s has length %d, want NFeatures=%d", name, got, c.NFeatures),
			}
		}
	}
	missingBin := int(c.MissingValuesBinIdx)
	for f, n := range c.NBinsNonMissing {
		if n < 0 || n > missingBin {
			return &ConfigError{
				Err:    ErrBinCountMismatch,
				Detail: fmt.Sprintf("feature %d: NBinsNonMissing=%d exceeds MissingValuesBinIdx=%d", f, n, missingBin),
			}
		}
	}
	for f, m := range c.MonotonicConstraints {
		if m < -1 || m > 1 {
			return &ConfigError{
				Err:    ErrDimensionMismatch,
				Detail: fmt.Sprintf("feature %d: MonotonicConstraints must be in {-1,0,1}, got %d", f, m),
			}
		}
	}
	return nil
}
