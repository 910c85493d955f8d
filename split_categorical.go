package histboost

import "sort"

// minCatSupport is the Fisher (1958) smoothing constant used both to
// filter out low-support categories and in the sort-key denominator.
// It is fixed, not a Config knob.
const minCatSupport = 10.0

// catInfo is one category surviving the support filter: its bin code
// and the Gb/(Hb+minCatSupport) ratio categories are ordered by.
type catInfo struct {
	bin uint8
	key float64
}

// findCategoricalSplit orders the feature's categories by gradient/
// hessian ratio, then scans the ordered list exactly like a numeric
// split search.
func findCategoricalSplit(ctx numericSplitContext) SplitInfo {
	infos := rankCategories(ctx)
	if len(infos) < 2 {
		return sentinelSplit(ctx.feature, true)
	}

	mono := ctx.cfg.MonotonicConstraints[ctx.feature]
	l2 := ctx.cfg.L2Regularization

	var sumGradientsLeft, sumHessiansLeft float64
	var nLeft uint32

	bestGain := noSplitGain
	bestEnd := -1
	var bestValueLeft, bestValueRight, bestGL, bestGR, bestHL, bestHR float64
	var bestNL, bestNR int

	for t, info := range infos {
		entry := ctx.hist[info.bin]
		sumGradientsLeft += entry.SumGradients
		sumHessiansLeft += entry.hessian(ctx.cfg.HessiansAreConstant)
		nLeft += entry.Count

		sumGradientsRight := ctx.sumGradients - sumGradientsLeft
		sumHessiansRight := ctx.sumHessians - sumHessiansLeft
		nRight := uint32(ctx.nSamples) - nLeft

		if int(nLeft) < ctx.cfg.MinSamplesLeaf || sumHessiansLeft < ctx.cfg.MinHessianToSplit {
			continue
		}
		if int(nRight) < ctx.cfg.MinSamplesLeaf || sumHessiansRight < ctx.cfg.MinHessianToSplit {
			break
		}

		gain, vl, vr := splitGain(sumGradientsLeft, sumHessiansLeft, sumGradientsRight, sumHessiansRight,
			ctx.parentLoss, mono, ctx.lowerBound, ctx.upperBound, l2)

		if gain > bestGain && gain > ctx.cfg.MinGainToSplit {
			bestGain = gain
			bestEnd = t
			bestValueLeft, bestValueRight = vl, vr
			bestGL, bestGR = sumGradientsLeft, sumGradientsRight
			bestHL, bestHR = sumHessiansLeft, sumHessiansRight
			bestNL, bestNR = int(nLeft), int(nRight)
		}
	}

	if bestEnd < 0 {
		return sentinelSplit(ctx.feature, true)
	}

	var bitset Bitset
	for _, info := range infos[:bestEnd+1] {
		bitset.set(info.bin)
	}

	return SplitInfo{
		Gain:             bestGain,
		FeatureIdx:       ctx.feature,
		IsCategorical:    true,
		MissingGoLeft:    bitset.test(ctx.cfg.MissingValuesBinIdx),
		LeftCatBitset:    bitset,
		SumGradientLeft:  bestGL,
		SumGradientRight: bestGR,
		SumHessianLeft:   bestHL,
		SumHessianRight:  bestHR,
		NSamplesLeft:     bestNL,
		NSamplesRight:    bestNR,
		ValueLeft:        bestValueLeft,
		ValueRight:       bestValueRight,
	}
}

// rankCategories filters bins (and, if the feature has missing
// values, the missing bin) by support and sorts the survivors
// ascending by Gb/(Hb+minCatSupport).
func rankCategories(ctx numericSplitContext) []catInfo {
	supportFactor := float64(ctx.nSamples) / ctx.sumHessians

	var infos []catInfo
	nBinsNonMissing := ctx.cfg.NBinsNonMissing[ctx.feature]
	for b := 0; b < nBinsNonMissing; b++ {
		entry := ctx.hist[b]
		h := entry.hessian(ctx.cfg.HessiansAreConstant)
		if h*supportFactor >= minCatSupport {
			infos = append(infos, catInfo{bin: uint8(b), key: entry.SumGradients / (h + minCatSupport)})
		}
	}

	if ctx.cfg.HasMissingValues[ctx.feature] {
		entry := ctx.hist[ctx.cfg.MissingValuesBinIdx]
		h := entry.hessian(ctx.cfg.HessiansAreConstant)
		if h*supportFactor >= minCatSupport {
			infos = append(infos, catInfo{bin: ctx.cfg.MissingValuesBinIdx, key: entry.SumGradients / (h + minCatSupport)})
		}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].key < infos[j].key })
	return infos
}
