// Package histboost is the numeric core of a histogram-based gradient
// boosted tree learner: binning raw feature values into small integer
// bin codes, searching per-feature histograms for the best split at a
// tree node, and partitioning sample indices between the two children
// that split produces.
//
// histboost does not choose bin thresholds, grow trees, run a boosting
// loop, or serialize models — those are the caller's job. Given
// thresholds and a binned matrix, this package answers two questions
// fast and in parallel: "what is the best split at this node?" and
// "given that split, which samples go left?".
package histboost

// MaxBins is the largest number of bins a single feature may have.
// It bounds Bitset's width: category membership is tracked with one
// bit per bin, so a feature can have at most MaxBins categories.
const MaxBins = 256
