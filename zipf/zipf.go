package zipf

import (
	"math"
	"sort"
)

const (
	initialLower       = 0.0
	initialUpper       = 10.0
	candidatesPerLevel = 32
	refinementLevels   = 8
	narrowFraction     = 0.10 // ±10% of the current window, per level
)

// Fit estimates the Zipfian exponent s best explaining p (§4.I).
// Stage 1 (Validate): reject an empty proportion vector.
// Stage 2 (Prepare): sort a copy of p descending.
// Stage 3 (Execute): bracket s in [0, 10]; each of 8 levels evaluates 32
// equally-spaced candidates by MSE against the normalised theoretical
// Zipfian, then narrows the bracket to ±10% of its window around the
// best candidate found.
// Stage 4 (Finalize): return the best s. No convergence guarantee, only
// monotone refinement — the bracket narrows every level regardless of
// whether the MSE improved.
// Complexity: O(levels · candidates · n).
func Fit(p []float64) (float64, error) {
	// Stage 1
	if len(p) == 0 {
		return 0, ErrEmptyInput
	}

	// Stage 2
	sorted := make([]float64, len(p))
	copy(sorted, p)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	// Stage 3
	lower, upper := initialLower, initialUpper
	var bestS float64
	for level := 0; level < refinementLevels; level++ {
		bestS, _ = bestCandidate(sorted, lower, upper)

		window := upper - lower
		half := window * narrowFraction
		lower = bestS - half
		if lower < 0 {
			lower = 0
		}
		upper = bestS + half
	}

	// Stage 4
	return bestS, nil
}

// bestCandidate evaluates candidatesPerLevel equally-spaced s values in
// [lower, upper] and returns the one with lowest MSE.
func bestCandidate(p []float64, lower, upper float64) (bestS, bestMSE float64) {
	step := (upper - lower) / float64(candidatesPerLevel-1)
	bestMSE = math.Inf(1)
	for k := 0; k < candidatesPerLevel; k++ {
		s := lower + step*float64(k)
		mse := meanSquaredError(p, s)
		if mse < bestMSE {
			bestMSE = mse
			bestS = s
		}
	}

	return bestS, bestMSE
}

// meanSquaredError compares p (already sorted descending) against the
// normalised theoretical Zipfian distribution for exponent s.
func meanSquaredError(p []float64, s float64) float64 {
	theoretical := theoreticalZipf(len(p), s)

	var sum float64
	for i, pi := range p {
		diff := pi - theoretical[i]
		sum += diff * diff
	}

	return sum / float64(len(p))
}

// theoreticalZipf returns i^-s / Σ j^-s for i = 1..n, normalised to sum
// to 1.
func theoreticalZipf(n int, s float64) []float64 {
	weights := make([]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		w := math.Pow(float64(i+1), -s)
		weights[i] = w
		total += w
	}
	for i := range weights {
		weights[i] /= total
	}

	return weights
}
