package histboost

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by boundary validation in NewSplitter,
// MapToBins, FindNodeSplit and SplitIndices. Each is checked against
// the caller's arguments before any parallel region starts; the
// parallel split-search and partition routines themselves have no
// error path, and "no admissible split" is a sentinel SplitInfo, not
// an error.
var (
	// ErrThresholdsNotAscending indicates a per-feature threshold array
	// passed to MapToBins is not sorted in ascending (non-decreasing)
	// order.
	ErrThresholdsNotAscending = errors.New("histboost: thresholds not ascending")

	// ErrBinCountMismatch indicates NBinsNonMissing for a feature is
	// negative or larger than MissingValuesBinIdx, so the real bins
	// would overlap the reserved missing-values bin. A Config holds no
	// threshold arrays, so the count is not compared with one.
	ErrBinCountMismatch = errors.New("histboost: bin count mismatch")

	// ErrHistogramShapeMismatch indicates a histogram slice passed to
	// FindNodeSplit does not have one row per feature, or a row does
	// not have enough bins to hold missingValuesBinIdx.
	ErrHistogramShapeMismatch = errors.New("histboost: histogram shape mismatch")

	// ErrBoundsInverted indicates lowerBound > upperBound was passed
	// to FindNodeSplit.
	ErrBoundsInverted = errors.New("histboost: lower bound exceeds upper bound")

	// ErrIndicesNotContiguous indicates the [lo, hi) range passed to
	// SplitIndices is not a valid contiguous sub-range of the splitter's
	// own partition array (lo < 0, hi past its end, or lo > hi).
	ErrIndicesNotContiguous = errors.New("histboost: sample indices not contiguous with partition array")

	// ErrDimensionMismatch indicates two slices that are expected to
	// have a matching length (per-feature metadata arrays, a binned
	// matrix column count, ...) do not. Config validation also returns
	// it for a negative NSamples or NFeatures and for a
	// MonotonicConstraints entry outside {-1, 0, +1}.
	ErrDimensionMismatch = errors.New("histboost: dimension mismatch")
)

// ConfigError wraps one of the sentinel errors above with a
// human-readable detail string.
type ConfigError struct {
	Err    error
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
