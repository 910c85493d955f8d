package histboost

import "golang.org/x/exp/constraints"

// valueEps guards the value() denominator against a zero-hessian node
// with zero regularization.
const valueEps = 1e-15

// clamp restricts x to [lo, hi]. Used by value() to bound a node's
// prediction under a monotonic constraint.
func clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// value computes the bounded leaf/node value -G/(H+lambda+eps),
// clipped to [lo, hi].
func value(sumGradients, sumHessians, lo, hi, l2Regularization float64) float64 {
	v := -sumGradients / (sumHessians + l2Regularization + valueEps)
	return clamp(v, lo, hi)
}

// lossFromValue is the loss contribution of a node whose prediction is
// v and whose summed gradient is G: G*v.
func lossFromValue(v, sumGradients float64) float64 {
	return sumGradients * v
}

// splitGain computes the gain of splitting a node with the given
// parent loss into a left and right child, honoring an optional
// monotonic constraint. mono is +1 (left <= right required), -1
// (left >= right required), or 0 (unconstrained). Returns
// noSplitGain if the constraint is violated.
func splitGain(sumGradientsLeft, sumHessiansLeft, sumGradientsRight, sumHessiansRight,
	parentLoss float64, mono int8, lo, hi, l2Regularization float64) (gain, valueLeft, valueRight float64) {
	valueLeft = value(sumGradientsLeft, sumHessiansLeft, lo, hi, l2Regularization)
	valueRight = value(sumGradientsRight, sumHessiansRight, lo, hi, l2Regularization)

	if mono > 0 && valueLeft > valueRight {
		return noSplitGain, valueLeft, valueRight
	}
	if mono < 0 && valueLeft < valueRight {
		return noSplitGain, valueLeft, valueRight
	}

	gain = parentLoss - lossFromValue(valueLeft, sumGradientsLeft) - lossFromValue(valueRight, sumGradientsRight)
	return gain, valueLeft, valueRight
}
