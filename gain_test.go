package histboost

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 10); got != 5 {
		t.Errorf("clamp(5,0,10) = %d, want 5", got)
	}
	if got := clamp(-5, 0, 10); got != 0 {
		t.Errorf("clamp(-5,0,10) = %d, want 0", got)
	}
	if got := clamp(15, 0, 10); got != 10 {
		t.Errorf("clamp(15,0,10) = %d, want 10", got)
	}
}

func TestValue(t *testing.T) {
	// G=-10, H=10, lambda=0: value = 10/10 = 1.0.
	got := value(-10, 10, math.Inf(-1), math.Inf(1), 0)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("value = %v, want 1.0", got)
	}

	// Clamped to an upper bound tighter than the unconstrained value.
	got = value(-10, 10, math.Inf(-1), 0.5, 0)
	if got != 0.5 {
		t.Errorf("value (clamped) = %v, want 0.5", got)
	}
}

func TestLossFromValue(t *testing.T) {
	if got := lossFromValue(2.0, 3.0); got != 6.0 {
		t.Errorf("lossFromValue(2,3) = %v, want 6.0", got)
	}
}

func TestSplitGainPositive(t *testing.T) {
	// A parent evenly split into two children with opposing gradients
	// should show positive gain over a degenerate (all-in-one-leaf)
	// parent loss.
	parentValue := value(0, 20, math.Inf(-1), math.Inf(1), 0)
	parentLoss := lossFromValue(parentValue, 0)

	gain, vl, vr := splitGain(-10, 10, 10, 10, parentLoss, 0, math.Inf(-1), math.Inf(1), 0)
	if gain <= 0 {
		t.Errorf("expected positive gain from separating opposing gradients, got %v (vl=%v, vr=%v)", gain, vl, vr)
	}
}

func TestSplitGainMonotonicViolation(t *testing.T) {
	// mono = +1 requires valueLeft <= valueRight. Construct a split
	// where the unconstrained left value would exceed the right.
	gain, _, _ := splitGain(-10, 10, 10, 10, 0, 1, math.Inf(-1), math.Inf(1), 0)
	if gain != noSplitGain {
		t.Errorf("expected noSplitGain for a monotonic violation, got %v", gain)
	}

	gain, _, _ = splitGain(-10, 10, 10, 10, 0, -1, math.Inf(-1), math.Inf(1), 0)
	if gain == noSplitGain {
		t.Errorf("expected admissible gain when the split matches mono=-1, got sentinel")
	}
}
