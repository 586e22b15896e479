package diversity

import "math"

// RowAggregator consumes one row of a distance matrix at a time,
// letting a checkpoint produce pairwise/Stirling/Leinster–Cobbold
// without ever materialising the full n×n matrix (§4.J: "single-pass
// streaming versions"). Rows arrive in any order exactly once each; a
// caller typically drives one from distmatrix.ComputeRowBatch output.
type RowAggregator interface {
	ConsumeRow(i int, row []float32)
	Finalize() float64
}

// PairwiseAggregator streams the mean-pairwise-distance index.
type PairwiseAggregator struct {
	n   int
	sum float64
}

// NewPairwiseAggregator creates a streaming Pairwise aggregator over n
// nodes.
func NewPairwiseAggregator(n int) *PairwiseAggregator {
	return &PairwiseAggregator{n: n}
}

// ConsumeRow implements RowAggregator. Only the upper triangle (j > i)
// is accumulated so each unordered pair counts once.
func (a *PairwiseAggregator) ConsumeRow(i int, row []float32) {
	for j := i + 1; j < len(row); j++ {
		a.sum += float64(row[j])
	}
}

// Finalize implements RowAggregator: normalises by n·(n-1)/2.
func (a *PairwiseAggregator) Finalize() float64 {
	if a.n < 2 {
		return 0
	}

	return (2 / (float64(a.n) * float64(a.n-1))) * a.sum
}

// StirlingAggregator streams Stirling's (α, β) disparity.
type StirlingAggregator struct {
	p           []float64
	alpha, beta float64
	sum         float64
}

// NewStirlingAggregator creates a streaming Stirling aggregator.
func NewStirlingAggregator(p []float64, alpha, beta float64) *StirlingAggregator {
	return &StirlingAggregator{p: p, alpha: alpha, beta: beta}
}

// ConsumeRow implements RowAggregator.
func (a *StirlingAggregator) ConsumeRow(i int, row []float32) {
	for j, d := range row {
		if j == i {
			continue
		}
		a.sum += math.Pow(float64(d), a.alpha) * math.Pow(a.p[i]*a.p[j], a.beta)
	}
}

// Finalize implements RowAggregator.
func (a *StirlingAggregator) Finalize() float64 { return a.sum }

// LeinsterCobboldAggregator streams the Leinster–Cobbold diversity of
// order alpha. Each row fully determines one node's "ordinariness"
// Σ_j p_j·exp(−d_ij), so no cross-row state beyond the ordinariness
// slice itself is needed.
type LeinsterCobboldAggregator struct {
	p            []float64
	alpha        float64
	ordinariness []float64
}

// NewLeinsterCobboldAggregator creates a streaming Leinster–Cobbold
// aggregator of order alpha over len(p) nodes.
func NewLeinsterCobboldAggregator(p []float64, alpha float64) *LeinsterCobboldAggregator {
	return &LeinsterCobboldAggregator{p: p, alpha: alpha, ordinariness: make([]float64, len(p))}
}

// ConsumeRow implements RowAggregator.
func (a *LeinsterCobboldAggregator) ConsumeRow(i int, row []float32) {
	var sum float64
	for j, d := range row {
		sum += a.p[j] * math.Exp(-float64(d))
	}
	a.ordinariness[i] = sum
}

// Finalize implements RowAggregator, applying the same α≠1/α=1 split as
// LeinsterCobbold.
func (a *LeinsterCobboldAggregator) Finalize() float64 {
	if a.alpha == 1 {
		var logProduct float64
		for i, pi := range a.p {
			if pi <= 0 || a.ordinariness[i] <= 0 {
				continue
			}
			logProduct += -pi * math.Log(a.ordinariness[i])
		}

		return math.Exp(logProduct)
	}

	var sum float64
	for i, pi := range a.p {
		sum += pi * math.Pow(a.ordinariness[i], a.alpha-1)
	}

	return math.Pow(sum, 1/(1-a.alpha))
}
