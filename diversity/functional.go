package diversity

import (
	"math"

	"github.com/lingometrics/diversutils/distance"
	"github.com/lingometrics/diversutils/mst"
)

// FunctionalEvenness computes the Villéger et al. (2008) functional
// evenness over an MST (§4.J): for each edge k with endpoints' weights
// w_a, w_b, EW_k = d_k/(w_a+w_b); PEW_k = EW_k/ΣEW; FEve =
// (Σ min(PEW_k, 1/(n−1)) − 1/(n−1)) / (1 − 1/(n−1)).
//
// Weights w_a, w_b are the endpoints' relative proportions, matching
// "weights" elsewhere in §4.J meaning p_i.
func FunctionalEvenness(tree *mst.MST, p []float64) (float64, error) {
	n := len(p)
	if n < 2 {
		return 0, ErrSingleSpecies
	}
	if len(tree.Edges) != n-1 {
		return 0, ErrDimensionMismatch
	}

	ew := make([]float64, len(tree.Edges))
	var sumEW float64
	for k, e := range tree.Edges {
		denom := p[e.A] + p[e.B]
		if denom == 0 {
			continue
		}
		ew[k] = e.Dist / denom
		sumEW += ew[k]
	}
	if sumEW == 0 {
		return 0, ErrSingleSpecies
	}

	threshold := 1 / float64(n-1)
	var sumMin float64
	for _, w := range ew {
		pew := w / sumEW
		sumMin += math.Min(pew, threshold)
	}

	return (sumMin - threshold) / (1 - threshold), nil
}

// centroid computes the abundance-weighted mean vector Σ p_i·v_i.
func centroid(vectors [][]float32, p []float64) []float32 {
	if len(vectors) == 0 {
		return nil
	}
	c := make([]float32, len(vectors[0]))
	for i, v := range vectors {
		w := float32(p[i])
		for d, val := range v {
			c[d] += w * val
		}
	}

	return c
}

// centroidDistances computes backend.Cosine(v_i, centroid) for every
// vector. Cosine distance is used as the metric d(v_i, c) throughout
// the functional-dispersion/divergence pair, matching the rest of the
// module's single distance notion.
func centroidDistances(vectors [][]float32, p []float64, backend distance.CosineBackend) []float64 {
	c := centroid(vectors, p)
	distances := make([]float64, len(vectors))
	for i, v := range vectors {
		distances[i] = float64(backend.Cosine(v, c))
	}

	return distances
}

// FunctionalDispersion computes the Laliberté & Legendre (2010)
// functional dispersion: weighted centroid c = Σ p_i·v_i; FDis =
// Σ p_i·d(v_i, c) / Σ p_i (§4.J).
func FunctionalDispersion(vectors [][]float32, p []float64, backend distance.CosineBackend) (float64, error) {
	if len(vectors) != len(p) {
		return 0, ErrDimensionMismatch
	}
	if len(p) == 0 {
		return 0, ErrEmptyInput
	}

	distances := centroidDistances(vectors, p, backend)

	var weightedSum, weightTotal float64
	for i, pi := range p {
		weightedSum += pi * distances[i]
		weightTotal += pi
	}
	if weightTotal == 0 {
		return 0, ErrEmptyInput
	}

	return weightedSum / weightTotal, nil
}

// FunctionalDivergence computes the Villéger (2008, modified) functional
// divergence (ΔD + d̄)/(Δ|D| + d̄), where d̄ is the weighted mean of
// centroid distances and ΔD, Δ|D| are the weighted deviance
// Σ (p_i − 1/n)(d_i − d̄) and weighted absolute deviance
// Σ |(p_i − 1/n)(d_i − d̄)| (§4.J).
func FunctionalDivergence(vectors [][]float32, p []float64, backend distance.CosineBackend) (float64, error) {
	if len(vectors) != len(p) {
		return 0, ErrDimensionMismatch
	}
	n := len(p)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	distances := centroidDistances(vectors, p, backend)

	var dBar float64
	for i, pi := range p {
		dBar += pi * distances[i]
	}

	invN := 1 / float64(n)
	var deltaD, deltaAbsD float64
	for i, pi := range p {
		term := (pi - invN) * (distances[i] - dBar)
		deltaD += term
		deltaAbsD += math.Abs(term)
	}

	denom := deltaAbsD + dBar
	if denom == 0 {
		return 0, ErrSingleSpecies
	}

	return (deltaD + dBar) / denom, nil
}
