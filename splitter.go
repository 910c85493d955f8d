package histboost

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Splitter owns one node-splitting problem's binned matrix and the
// partition array + scratch buffers used by SplitIndices. A Splitter
// is built once per tree and reused across every node of that tree.
type Splitter struct {
	cfg Config

	// partition holds sample indices, permuted in place by
	// SplitIndices. Initialized to 0..NSamples-1.
	partition []uint32

	// leftBuf and rightBuf are scratch space for SplitIndices' two
	// parallel partition phases, each as long as partition itself, so
	// a region's write offset can be taken directly from its node-local
	// index origin with no extra range mapping.
	leftBuf, rightBuf []uint32

	// nThreads bounds the parallelism of every fan-out region.
	nThreads int
}

// NewSplitter validates cfg and builds a Splitter ready to search for
// splits. nThreads caps parallelism in every fan-out region; 0 means
// runtime.GOMAXPROCS(0).
func NewSplitter(cfg Config, nThreads int) (*Splitter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if nThreads == 0 {
		nThreads = runtime.GOMAXPROCS(0)
	}

	partition := make([]uint32, cfg.NSamples)
	for i := range partition {
		partition[i] = uint32(i)
	}

	return &Splitter{
		cfg:       cfg,
		partition: partition,
		leftBuf:   make([]uint32, cfg.NSamples),
		rightBuf:  make([]uint32, cfg.NSamples),
		nThreads:  nThreads,
	}, nil
}

// Partition returns the splitter's own index array. Callers pass
// contiguous sub-slices of it to SplitIndices.
func (s *Splitter) Partition() []uint32 {
	return s.partition
}

// FindNodeSplit searches every feature's histogram in parallel and
// returns the best admissible split, or a sentinel SplitInfo
// (Gain == -1) if none exists.
func (s *Splitter) FindNodeSplit(nSamples int, histograms [][]HistogramEntry,
	sumGradients, sumHessians, value, lowerBound, upperBound float64) (SplitInfo, error) {

	if lowerBound > upperBound {
		return SplitInfo{}, &ConfigError{Err: ErrBoundsInverted,
			Detail: fmt.Sprintf("lowerBound=%v > upperBound=%v", lowerBound, upperBound)}
	}
	if len(histograms) != s.cfg.NFeatures {
		return SplitInfo{}, &ConfigError{Err: ErrHistogramShapeMismatch,
			Detail: fmt.Sprintf("got %d feature histograms, want %d", len(histograms), s.cfg.NFeatures)}
	}
	maxBins := int(s.cfg.MissingValuesBinIdx) + 1
	for f, h := range histograms {
		if len(h) < maxBins {
			return SplitInfo{}, &ConfigError{Err: ErrHistogramShapeMismatch,
				Detail: fmt.Sprintf("feature %d: histogram has %d bins, want at least %d", f, len(h), maxBins)}
		}
	}

	parentLoss := lossFromValue(value, sumGradients)
	splitInfos := make([]SplitInfo, s.cfg.NFeatures)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(s.nThreads)
	for f := 0; f < s.cfg.NFeatures; f++ {
		f := f
		g.Go(func() error {
			ctx := numericSplitContext{
				cfg:          &s.cfg,
				hist:         histograms[f],
				feature:      f,
				nSamples:     nSamples,
				sumGradients: sumGradients,
				sumHessians:  sumHessians,
				parentLoss:   parentLoss,
				lowerBound:   lowerBound,
				upperBound:   upperBound,
			}
			if s.cfg.IsCategorical[f] {
				splitInfos[f] = findCategoricalSplit(ctx)
			} else {
				splitInfos[f] = findNumericSplit(ctx)
			}
			return nil
		})
	}
	_ = g.Wait() // per-feature search never returns an error

	best := splitInfos[0]
	for _, candidate := range splitInfos[1:] {
		if candidate.Gain > best.Gain {
			best = candidate
		}
	}
	return best, nil
}
