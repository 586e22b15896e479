package diversity

import "math"

// Shannon computes the Shannon–Wiener entropy H = −Σ p_i·ln(p_i) (§4.J).
// Zero-probability entries contribute 0 (the limit of p·ln p as p→0),
// matching the convention every other index in this file relies on.
func Shannon(p []float64) float64 {
	var h float64
	for _, pi := range p {
		if pi <= 0 {
			continue
		}
		h -= pi * math.Log(pi)
	}

	return h
}

// HillFromShannon converts a Shannon entropy to its Hill-number
// equivalent, exp(H).
func HillFromShannon(h float64) float64 { return math.Exp(h) }

// Simpson computes Σ p_i².
func Simpson(p []float64) float64 {
	var s float64
	for _, pi := range p {
		s += pi * pi
	}

	return s
}

// SimpsonDominance computes 1 − Simpson(p).
func SimpsonDominance(p []float64) float64 { return 1 - Simpson(p) }

// BergerParker returns max p_i.
func BergerParker(p []float64) float64 {
	var max float64
	for _, pi := range p {
		if pi > max {
			max = pi
		}
	}

	return max
}

// Hill computes the Hill number of order alpha: (Σ p_i^α)^(1/(1−α)),
// with the α=1 limit taken as exp(Shannon(p)) (§4.J).
func Hill(p []float64, alpha float64) float64 {
	if alpha == 1 {
		return HillFromShannon(Shannon(p))
	}

	var sum float64
	for _, pi := range p {
		sum += math.Pow(pi, alpha)
	}

	return math.Pow(sum, 1/(1-alpha))
}

// Renyi computes the Rényi entropy of order alpha: ln(Σ p_i^α)/(1−α),
// with the α=1 limit taken as Shannon(p).
func Renyi(p []float64, alpha float64) float64 {
	if alpha == 1 {
		return Shannon(p)
	}

	var sum float64
	for _, pi := range p {
		sum += math.Pow(pi, alpha)
	}

	return math.Log(sum) / (1 - alpha)
}

// PatilTaillie computes the Patil–Taillie entropy of order alpha:
// (1 − Σ p_i^(α+1))/α, with the α=0 limit taken as Shannon(p).
func PatilTaillie(p []float64, alpha float64) float64 {
	if alpha == 0 {
		return Shannon(p)
	}

	var sum float64
	for _, pi := range p {
		sum += math.Pow(pi, alpha+1)
	}

	return (1 - sum) / alpha
}

// QLogarithmic computes the q-logarithmic entropy (1 − Σ p_i^q)/(q−1),
// with the q=1 limit taken as Shannon(p).
func QLogarithmic(p []float64, q float64) float64 {
	if q == 1 {
		return Shannon(p)
	}

	var sum float64
	for _, pi := range p {
		sum += math.Pow(pi, q)
	}

	return (1 - sum) / (q - 1)
}

// Good computes the Good (α, β) index: −Σ p_i^α·(ln p_i)^β. Entries with
// p_i == 0 contribute 0, following the same convention as Shannon.
func Good(p []float64, alpha, beta float64) float64 {
	var sum float64
	for _, pi := range p {
		if pi <= 0 {
			continue
		}
		sum += math.Pow(pi, alpha) * math.Pow(math.Log(pi), beta)
	}

	return -sum
}

// lnFactorial returns ln(n!) via the log-gamma function, avoiding
// overflow for the large absolute counts Brillouin's diversity needs.
func lnFactorial(n uint64) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)

	return lg
}

// Brillouin computes the Brillouin diversity index (ln N! − Σ ln n_i!)/N
// over absolute counts n_i summing to N (§4.J).
func Brillouin(counts []uint64) float64 {
	var total uint64
	var sumLnFactorials float64
	for _, n := range counts {
		total += n
		sumLnFactorials += lnFactorial(n)
	}
	if total == 0 {
		return 0
	}

	return (lnFactorial(total) - sumLnFactorials) / float64(total)
}

// McIntosh computes the McIntosh diversity index (N − √(Σ n_i²))/(N − √N)
// over absolute counts.
func McIntosh(counts []uint64) float64 {
	var total uint64
	var sumSquares float64
	for _, n := range counts {
		total += n
		sumSquares += float64(n) * float64(n)
	}
	nf := float64(total)
	denom := nf - math.Sqrt(nf)
	if denom == 0 {
		return 0
	}

	return (nf - math.Sqrt(sumSquares)) / denom
}
