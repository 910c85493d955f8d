package histboost

import (
	"math"
	"testing"
)

// numericTestConfig builds a single-feature Config for split_numeric
// scans: 3 non-missing bins plus a reserved missing bin at index 3.
func numericTestConfig(hasMissing bool, mono int8) *Config {
	return &Config{
		NSamples:             1,
		NFeatures:            1,
		NBinsNonMissing:      []int{3},
		MissingValuesBinIdx:  3,
		HasMissingValues:     []bool{hasMissing},
		IsCategorical:        []bool{false},
		MonotonicConstraints: []int8{mono},
		L2Regularization:     0,
		MinHessianToSplit:    0,
		MinSamplesLeaf:       1,
		MinGainToSplit:       0,
		HessiansAreConstant:  false,
	}
}

func numericTestHist() []HistogramEntry {
	return []HistogramEntry{
		{SumGradients: -4, SumHessians: 4, Count: 4}, // bin 0
		{SumGradients: -2, SumHessians: 2, Count: 2}, // bin 1
		{SumGradients: 4, SumHessians: 3, Count: 3},  // bin 2
		{SumGradients: 2, SumHessians: 1, Count: 1},  // bin 3 (missing)
	}
}

func numericTestContext(hasMissing bool) numericSplitContext {
	cfg := numericTestConfig(hasMissing, 0)
	return numericSplitContext{
		cfg:          cfg,
		hist:         numericTestHist(),
		feature:      0,
		nSamples:     10,
		sumGradients: 0,
		sumHessians:  10,
		parentLoss:   0,
		lowerBound:   math.Inf(-1),
		upperBound:   math.Inf(1),
	}
}

func TestScanLeftToRightPicksBestBin(t *testing.T) {
	ctx := numericTestContext(true)
	got, found := scanLeftToRight(ctx)
	if !found {
		t.Fatalf("expected a split to be found")
	}
	if got.BinIdx != 1 {
		t.Errorf("BinIdx = %d, want 1", got.BinIdx)
	}
	if math.Abs(got.Gain-15.0) > 1e-6 {
		t.Errorf("Gain = %v, want ~15.0", got.Gain)
	}
	if got.MissingGoLeft {
		t.Errorf("left-to-right scan must never route missing left")
	}
	if got.NSamplesLeft != 6 || got.NSamplesRight != 4 {
		t.Errorf("NSamplesLeft/Right = %d/%d, want 6/4", got.NSamplesLeft, got.NSamplesRight)
	}
}

func TestScanRightToLeftBeatsSentinelSeed(t *testing.T) {
	ctx := numericTestContext(true)
	got, found := scanRightToLeft(ctx, noSplitGain)
	if !found {
		t.Fatalf("expected a split to be found against a sentinel seed")
	}
	if got.BinIdx != 1 {
		t.Errorf("BinIdx = %d, want 1", got.BinIdx)
	}
	if !got.MissingGoLeft {
		t.Errorf("right-to-left scan must always route missing left")
	}
	if math.Abs(got.Gain-7.619047619) > 1e-6 {
		t.Errorf("Gain = %v, want ~7.619", got.Gain)
	}
}

func TestScanRightToLeftYieldsToBetterSeed(t *testing.T) {
	ctx := numericTestContext(true)
	_, found := scanRightToLeft(ctx, 15.0)
	if found {
		t.Fatalf("scanRightToLeft must not report a split that does not beat the seed")
	}
}

func TestFindNumericSplitPicksBestDirection(t *testing.T) {
	ctx := numericTestContext(true)
	got := findNumericSplit(ctx)
	if got.MissingGoLeft {
		t.Errorf("expected the left-to-right direction (gain 15) to win over right-to-left (gain ~7.6)")
	}
	if math.Abs(got.Gain-15.0) > 1e-6 {
		t.Errorf("Gain = %v, want ~15.0", got.Gain)
	}
}

func TestFindNumericSplitSkipsRightToLeftWithoutMissing(t *testing.T) {
	ctx := numericTestContext(false)
	got := findNumericSplit(ctx)
	// With no missing values, only scanLeftToRight runs; the result
	// must match it exactly.
	want, _ := scanLeftToRight(ctx)
	if got != want {
		t.Errorf("findNumericSplit = %+v, want %+v", got, want)
	}
}

func TestFindNumericSplitMonotonicConstraintRejectsBestBin(t *testing.T) {
	ctx := numericTestContext(true)
	ctx.cfg = numericTestConfig(true, 1) // left <= right required

	got := findNumericSplit(ctx)
	if got.Gain == noSplitGain {
		return
	}
	// If any split survives the constraint its values must respect it.
	if got.ValueLeft > got.ValueRight {
		t.Errorf("monotonic violation survived: valueLeft=%v > valueRight=%v", got.ValueLeft, got.ValueRight)
	}
}

func TestFindNumericSplitNoAdmissibleSplit(t *testing.T) {
	ctx := numericTestContext(true)
	ctx.cfg.MinSamplesLeaf = 1000 // impossible to satisfy

	got := findNumericSplit(ctx)
	if got.Gain != noSplitGain {
		t.Errorf("expected sentinel gain, got %v", got.Gain)
	}
}
