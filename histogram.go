package histboost

// HistogramEntry is one (bin, feature) cell of a precomputed
// per-feature histogram: the summed gradient, summed hessian, and
// sample count of every sample at the current node that falls into
// this bin. Histograms are built by the grower and are read-only
// during split search.
type HistogramEntry struct {
	SumGradients float64
	SumHessians  float64
	Count        uint32
}

// hessian returns the entry's hessian sum, synthesizing it from Count
// when the loss has constant curvature, so constant-hessian losses
// never need to populate SumHessians.
func (h HistogramEntry) hessian(constantHessians bool) float64 {
	if constantHessians {
		return float64(h.Count)
	}
	return h.SumHessians
}
