package histboost

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// sampleGoesLeft implements the routing predicate for a single split:
// a categorical split tests bitset membership directly; a numeric
// split routes missing values per the split's MissingGoLeft flag and
// everything else by threshold comparison.
func (s *Splitter) sampleGoesLeft(info SplitInfo, sampleIdx uint32) bool {
	bin := s.cfg.Binned[info.FeatureIdx*s.cfg.NSamples+int(sampleIdx)]
	if info.IsCategorical {
		return info.LeftCatBitset.test(bin)
	}
	if info.MissingGoLeft && bin == s.cfg.MissingValuesBinIdx {
		return true
	}
	return bin <= info.BinIdx
}

// SplitIndices permutes partition[lo:hi] in place so left-child
// samples occupy the front and right-child samples the back, and
// reports where the right child begins. lo and hi describe the node
// as an offset/length into the splitter's own partition array; use
// Partition() to read the full array back.
//
// The permutation runs in two parallel phases over nThreads
// contiguous regions of [lo, hi): phase A buckets each region's
// samples into the left/right scratch buffers and counts them; a
// serial prefix sum over those counts then fixes each region's final
// write offset; phase B copies the buckets into partition at those
// offsets. Order within each child is not preserved.
func (s *Splitter) SplitIndices(info SplitInfo, lo, hi int) (left, right []uint32, rightStart int, err error) {
	if lo < 0 || hi > len(s.partition) || lo > hi {
		return nil, nil, 0, &ConfigError{Err: ErrIndicesNotContiguous,
			Detail: fmt.Sprintf("range [%d,%d) out of bounds for partition of length %d", lo, hi, len(s.partition))}
	}

	n := hi - lo
	if n == 0 {
		return s.partition[lo:lo], s.partition[hi:hi], lo, nil
	}

	nThreads := s.nThreads
	if nThreads > n {
		nThreads = n
	}
	if nThreads < 1 {
		nThreads = 1
	}

	regionStart, regionLen := partitionRegions(n, nThreads)
	leftCount := make([]int, nThreads)
	rightCount := make([]int, nThreads)

	g, _ := errgroup.WithContext(context.Background())
	for t := 0; t < nThreads; t++ {
		t := t
		g.Go(func() error {
			base := lo + regionStart[t]
			leftN, rightN := 0, 0
			for i := 0; i < regionLen[t]; i++ {
				idx := s.partition[base+i]
				if s.sampleGoesLeft(info, idx) {
					s.leftBuf[base+leftN] = idx
					leftN++
				} else {
					s.rightBuf[base+rightN] = idx
					rightN++
				}
			}
			leftCount[t] = leftN
			rightCount[t] = rightN
			return nil
		})
	}
	_ = g.Wait()

	k := 0
	for _, c := range leftCount {
		k += c
	}

	leftOffset := make([]int, nThreads)
	rightOffset := make([]int, nThreads)
	lAcc, rAcc := 0, 0
	for t := 0; t < nThreads; t++ {
		leftOffset[t] = lAcc
		lAcc += leftCount[t]
		rightOffset[t] = rAcc
		rAcc += rightCount[t]
	}

	g2, _ := errgroup.WithContext(context.Background())
	for t := 0; t < nThreads; t++ {
		t := t
		g2.Go(func() error {
			base := lo + regionStart[t]
			copy(s.partition[lo+leftOffset[t]:], s.leftBuf[base:base+leftCount[t]])
			copy(s.partition[lo+k+rightOffset[t]:], s.rightBuf[base:base+rightCount[t]])
			return nil
		})
	}
	_ = g2.Wait()

	return s.partition[lo : lo+k], s.partition[lo+k : hi], lo + k, nil
}

// partitionRegions divides n items into nThreads contiguous regions,
// the first n%nThreads of which get one extra item.
func partitionRegions(n, nThreads int) (start, length []int) {
	start = make([]int, nThreads)
	length = make([]int, nThreads)
	base := n / nThreads
	extra := n % nThreads

	pos := 0
	for t := 0; t < nThreads; t++ {
		l := base
		if t < extra {
			l++
		}
		start[t] = pos
		length[t] = l
		pos += l
	}
	return start, length
}
