package histboost

// numericSplitContext bundles the per-node quantities every numeric
// scan needs, so the two scan directions (left-to-right and
// right-to-left) share one signature instead of threading nine
// parameters through both.
type numericSplitContext struct {
	cfg                    *Config
	hist                   []HistogramEntry
	feature                int
	nSamples               int
	sumGradients           float64
	sumHessians            float64
	parentLoss             float64
	lowerBound, upperBound float64
}

// findNumericSplit runs the left-to-right scan, and — if the feature
// has missing values — the right-to-left scan, returning whichever
// found the higher gain.
func findNumericSplit(ctx numericSplitContext) SplitInfo {
	best := sentinelSplit(ctx.feature, false)

	if s, ok := scanLeftToRight(ctx); ok {
		best = s
	}

	if ctx.cfg.HasMissingValues[ctx.feature] {
		if s, ok := scanRightToLeft(ctx, best.Gain); ok {
			best = s
		}
	}

	return best
}

// scanLeftToRight accumulates bins 0..end into the left child, missing
// values routed right. end is
// nBinsNonMissing-1+hasMissing: the "-1" keeps the last non-missing
// bin from ever forming an empty right child; the "+hasMissing" lets
// missing be the sole right-child bin when the feature has missing
// values.
func scanLeftToRight(ctx numericSplitContext) (SplitInfo, bool) {
	nBinsNonMissing := ctx.cfg.NBinsNonMissing[ctx.feature]
	hasMissing := 0
	if ctx.cfg.HasMissingValues[ctx.feature] {
		hasMissing = 1
	}
	end := nBinsNonMissing - 1 + hasMissing

	mono := ctx.cfg.MonotonicConstraints[ctx.feature]
	l2 := ctx.cfg.L2Regularization

	var sumGradientsLeft, sumHessiansLeft float64
	var nLeft uint32

	best := sentinelSplit(ctx.feature, false)
	bestGain := noSplitGain
	found := false

	for b := 0; b < end; b++ {
		entry := ctx.hist[b]
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
			found = true
			best = SplitInfo{
				Gain:             gain,
				FeatureIdx:       ctx.feature,
				BinIdx:           uint8(b),
				MissingGoLeft:    false,
				SumGradientLeft:  sumGradientsLeft,
				SumGradientRight: sumGradientsRight,
				SumHessianLeft:   sumHessiansLeft,
				SumHessianRight:  sumHessiansRight,
				NSamplesLeft:     int(nLeft),
				NSamplesRight:    int(nRight),
				ValueLeft:        vl,
				ValueRight:       vr,
			}
		}
	}

	return best, found
}

// scanRightToLeft accumulates bins nBinsNonMissing-2..0 into the right
// child via bin b+1, missing values routed left. seedGain is the
// left-to-right scan's result: this scan only ever reports a split
// back to the caller when it beats that seed, so a worse direction
// never overwrites a better one. Whether a split was found is tracked
// with an explicit found flag rather than relying on the -1 sentinel,
// so the comparison stays correct even if gains were represented in a
// space where -1 is not distinguished.
func scanRightToLeft(ctx numericSplitContext, seedGain float64) (SplitInfo, bool) {
	nBinsNonMissing := ctx.cfg.NBinsNonMissing[ctx.feature]
	mono := ctx.cfg.MonotonicConstraints[ctx.feature]
	l2 := ctx.cfg.L2Regularization

	var sumGradientsRight, sumHessiansRight float64
	var nRight uint32

	var best SplitInfo
	bestGain := seedGain
	found := false

	for b := nBinsNonMissing - 2; b >= 0; b-- {
		entry := ctx.hist[b+1]
		sumGradientsRight += entry.SumGradients
		sumHessiansRight += entry.hessian(ctx.cfg.HessiansAreConstant)
		nRight += entry.Count

		sumGradientsLeft := ctx.sumGradients - sumGradientsRight
		sumHessiansLeft := ctx.sumHessians - sumHessiansRight
		nLeft := uint32(ctx.nSamples) - nRight

		if int(nRight) < ctx.cfg.MinSamplesLeaf || sumHessiansRight < ctx.cfg.MinHessianToSplit {
			continue
		}
		if int(nLeft) < ctx.cfg.MinSamplesLeaf || sumHessiansLeft < ctx.cfg.MinHessianToSplit {
			break
		}

		gain, vl, vr := splitGain(sumGradientsLeft, sumHessiansLeft, sumGradientsRight, sumHessiansRight,
			ctx.parentLoss, mono, ctx.lowerBound, ctx.upperBound, l2)

		if gain > bestGain && gain > ctx.cfg.MinGainToSplit {
			bestGain = gain
			found = true
			best = SplitInfo{
				Gain:             gain,
				FeatureIdx:       ctx.feature,
				BinIdx:           uint8(b),
				MissingGoLeft:    true,
				SumGradientLeft:  sumGradientsLeft,
				SumGradientRight: sumGradientsRight,
				SumHessianLeft:   sumHessiansLeft,
				SumHessianRight:  sumHessiansRight,
				NSamplesLeft:     int(nLeft),
				NSamplesRight:    int(nRight),
				ValueLeft:        vl,
				ValueRight:       vr,
			}
		}
	}

	if !found {
		return SplitInfo{}, false
	}
	return best, true
}
