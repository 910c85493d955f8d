package histboost

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// MapToBins translates a row-major raw feature matrix into a
// column-major matrix of bin codes. data has
// length rows*cols; thresholds[f] is feature f's ascending threshold
// array; out must have length rows*cols and receives column f at
// out[f*rows:(f+1)*rows]. nThreads caps parallelism across columns;
// 0 means runtime.GOMAXPROCS(0).
func MapToBins(data []float64, rows, cols int, thresholds [][]float64,
	isCategorical []bool, missingValuesBinIdx uint8, nThreads int, out []uint8) error {

	if len(data) != rows*cols {
		return &ConfigError{Err: ErrDimensionMismatch,
			Detail: fmt.Sprintf("data has length %d, want rows*cols=%d", len(data), rows*cols)}
	}
	if len(out) != rows*cols {
		return &ConfigError{Err: ErrDimensionMismatch,
			Detail: fmt.Sprintf("out has length %d, want rows*cols=%d", len(out), rows*cols)}
	}
	if len(thresholds) != cols || len(isCategorical) != cols {
		return &ConfigError{Err: ErrDimensionMismatch,
			Detail: fmt.Sprintf("thresholds/isCategorical must have length cols=%d", cols)}
	}
	for f, t := range thresholds {
		if !sort.Float64sAreSorted(t) {
			return &ConfigError{Err: ErrThresholdsNotAscending, Detail: fmt.Sprintf("feature %d", f)}
		}
	}

	if nThreads == 0 {
		nThreads = runtime.GOMAXPROCS(0)
	}
	if nThreads > cols {
		nThreads = cols
	}
	if nThreads < 1 {
		nThreads = 1
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(nThreads)
	for f := 0; f < cols; f++ {
		f := f
		g.Go(func() error {
			binColumn(data, rows, cols, f, thresholds[f], isCategorical[f], missingValuesBinIdx, out)
			return nil
		})
	}
	return g.Wait()
}

// binColumn bins every row of one feature column, applying the
// per-value binning rule.
func binColumn(data []float64, rows, cols, feature int, thresholds []float64,
	isCategorical bool, missingValuesBinIdx uint8, out []uint8) {

	colOut := out[feature*rows : (feature+1)*rows]
	for r := 0; r < rows; r++ {
		v := data[r*cols+feature]
		colOut[r] = binValue(v, thresholds, isCategorical, missingValuesBinIdx)
	}
}

// binValue applies the per-value binning rule: NaN maps to the
// missing bin; otherwise the smallest threshold index
// k with value <= thresholds[k] is used (or len(thresholds) if none
// qualifies); for categorical features, a value not exactly equal to
// thresholds[k] is an unseen category and also maps to the missing
// bin.
func binValue(v float64, thresholds []float64, isCategorical bool, missingValuesBinIdx uint8) uint8 {
	if math.IsNaN(v) {
		return missingValuesBinIdx
	}

	k := searchThreshold(thresholds, v)

	if isCategorical && (k >= len(thresholds) || thresholds[k] != v) {
		return missingValuesBinIdx
	}

	return uint8(k)
}

// searchThreshold finds the smallest index k with v <= thresholds[k],
// or len(thresholds) if none qualifies. The midpoint
// left+(right-left-1)/2 biases toward the lower half, matching the <=
// comparison: when v equals a threshold exactly, the upper bound
// collapses rather than the lower one, avoiding an off-by-one (spec
// section 4.2).
func searchThreshold(thresholds []float64, v float64) int {
	left, right := 0, len(thresholds)
	for left < right {
		mid := left + (right-left-1)/2
		if v <= thresholds[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}
