package diversity

import "math"

// DistanceAt is satisfied by distmatrix.Matrix; kept as an interface so
// disparity indices don't import distmatrix, matching the layering
// §2's component table implies (J depends on F's output, not F itself).
type DistanceAt interface {
	At(i, j int) float64
}

// Pairwise computes the mean pairwise distance (2/(n·(n−1)))·Σ_{i<j}
// d_ij (§4.J). Independent of the proportions.
func Pairwise(d DistanceAt, n int) float64 {
	if n < 2 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += d.At(i, j)
		}
	}

	return (2 / (float64(n) * float64(n-1))) * sum
}

// Stirling computes Stirling's (α, β) disparity Σ_{i≠j}
// d_ij^α·(p_i·p_j)^β (§4.J).
func Stirling(d DistanceAt, p []float64, alpha, beta float64) float64 {
	n := len(p)
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			sum += math.Pow(d.At(i, j), alpha) * math.Pow(p[i]*p[j], beta)
		}
	}

	return sum
}

// similarityFromDistance turns a cosine distance in [0, 2] into a
// similarity in [0, 1] for the Rao-like indices below, which assume a
// similarity kernel rather than a raw distance.
func similarityFromDistance(d float64) float64 {
	s := 1 - d/2
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}

	return s
}

// RicottaSzeidl computes the Ricotta–Szeidl (2006) diversity of order
// alpha, the Rao-quadratic-entropy generalization that preceded
// Leinster–Cobbold: for each species i, Q_i = Σ_j p_j·z_ij (its mean
// similarity to the rest of the assemblage); the index is the Hill-like
// power mean of Q_i weighted by p_i, with the α=1 case taken as the
// weighted geometric mean.
func RicottaSzeidl(d DistanceAt, p []float64, alpha float64) float64 {
	n := len(p)
	q := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += p[j] * similarityFromDistance(d.At(i, j))
		}
		q[i] = sum
	}

	if alpha == 1 {
		var sum float64
		for i, pi := range p {
			if pi <= 0 || q[i] <= 0 {
				continue
			}
			sum += pi * math.Log(q[i])
		}

		return math.Exp(-sum)
	}

	var sum float64
	for i, pi := range p {
		sum += pi * math.Pow(q[i], alpha-1)
	}

	return math.Pow(sum, 1/(1-alpha))
}

// ChaoResult bundles a functional-diversity index with its Hill-number
// transform (§4.J: "returns the index and its Hill-number transform").
type ChaoResult struct {
	Index      float64
	HillNumber float64
}

// ChaoEtAl computes the Chao, Chiu & Jost (2014)-style functional
// diversity as a Rao-style quadratic entropy Q = ΣΣ d_ij^α·p_i·p_j (each
// distance raised to exponent alpha), with Hill transform 1/(1−Q) — the mean effective
// number of functionally-distinct types.
func ChaoEtAl(d DistanceAt, p []float64, alpha float64) ChaoResult {
	n := len(p)
	var q float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			q += math.Pow(d.At(i, j), alpha) * p[i] * p[j]
		}
	}

	hill := 1.0
	if q < 1 {
		hill = 1 / (1 - q)
	}

	return ChaoResult{Index: q, HillNumber: hill}
}

// Scheiner computes the Scheiner (2012) species-phylogenetic-functional
// diversity, the same Rao-quadratic-entropy shape as ChaoEtAl but kept
// as a distinct named index for output-format parity with the original
// tool (spec.md: "same shape").
func Scheiner(d DistanceAt, p []float64, alpha float64) ChaoResult {
	return ChaoEtAl(d, p, alpha)
}

// LeinsterCobbold computes the Leinster–Cobbold (2012) diversity of
// order alpha, using similarity exp(−d) (u=1, §4.J): for α≠1,
// (Σ_i p_i·(Σ_j p_j·exp(−d_ij))^(α−1))^(1/(1−α)); for α=1,
// Π_i (Σ_j p_j·exp(−d_ij))^(−p_i).
func LeinsterCobbold(d DistanceAt, p []float64, alpha float64) float64 {
	n := len(p)
	ordinariness := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += p[j] * math.Exp(-d.At(i, j))
		}
		ordinariness[i] = sum
	}

	if alpha == 1 {
		var logProduct float64
		for i, pi := range p {
			if pi <= 0 || ordinariness[i] <= 0 {
				continue
			}
			logProduct += -pi * math.Log(ordinariness[i])
		}

		return math.Exp(logProduct)
	}

	var sum float64
	for i, pi := range p {
		sum += pi * math.Pow(ordinariness[i], alpha-1)
	}

	return math.Pow(sum, 1/(1-alpha))
}
