package diversity

import "math"

// Most of this file's indices are specified in spec.md by citation only, with
// no formula body present in the retrieved original source (DESIGN.md
// records the grounding gap). Each follows the index's standard
// published closed-form definition; the exceptions are Camargo1993 and
// Pielou1977, which spec.md gives concrete formulas for (the latter
// deliberately non-standard).

// Heip computes Heip's evenness (e^H − 1)/(S − 1), S = len(p).
func Heip(p []float64) (float64, error) {
	if len(p) < 2 {
		return 0, ErrSingleSpecies
	}

	return (HillFromShannon(Shannon(p)) - 1) / float64(len(p)-1), nil
}

// Pielou1969 computes Pielou's evenness J' = H/ln(S).
func Pielou1969(p []float64) (float64, error) {
	if len(p) < 2 {
		return 0, ErrSingleSpecies
	}

	return Shannon(p) / math.Log(float64(len(p))), nil
}

// Pielou1975 is the same J' = H/ln(S) formula under its 1975 citation;
// kept as a distinct named index for output-format parity with the
// original tool, which emits both under separate column headers.
func Pielou1975(p []float64) (float64, error) { return Pielou1969(p) }

// Pielou1977 divides Shannon entropy by ln(numDimensions) rather than
// ln(numSpecies) — an open question in spec.md §9, preserved verbatim
// per its explicit instruction rather than "corrected" to ln(S).
func Pielou1977(p []float64, numDimensions int) float64 {
	return Shannon(p) / math.Log(float64(numDimensions))
}

// Williams1964 computes Williams' (1964) evenness e^H/S, the ratio of
// the Hill-1 number to species richness.
func Williams1964(p []float64) float64 {
	return HillFromShannon(Shannon(p)) / float64(len(p))
}

// Camargo1993 computes Camargo's (1993) evenness E' = 1 − Σ_{i<j} |p_i −
// p_j| / S (spec.md gives this formula verbatim).
func Camargo1993(p []float64) float64 {
	s := len(p)
	var sum float64
	for i := 0; i < s; i++ {
		for j := i + 1; j < s; j++ {
			sum += math.Abs(p[i] - p[j])
		}
	}

	return 1 - sum/float64(s)
}

// Alatalo1981 computes Alatalo's F_{2,1} evenness (N2−1)/(N1−1), where
// N1 = exp(Shannon(p)) and N2 = 1/Simpson(p) are Hill numbers of order 1
// and 2.
func Alatalo1981(p []float64) (float64, error) {
	n1 := HillFromShannon(Shannon(p))
	if n1 == 1 {
		return 0, ErrSingleSpecies
	}
	n2 := 1 / Simpson(p)

	return (n2 - 1) / (n1 - 1), nil
}

// Molinari1989 computes Molinari's G_{2,1}, a modification of Alatalo's
// F_{2,1}: (N2−1)/(exp(√(2·(N1−1)))−1).
func Molinari1989(p []float64) (float64, error) {
	n1 := HillFromShannon(Shannon(p))
	denom := math.Exp(math.Sqrt(2*(n1-1))) - 1
	if denom == 0 {
		return 0, ErrSingleSpecies
	}
	n2 := 1 / Simpson(p)

	return (n2 - 1) / denom, nil
}

// Bulla1994O computes Bulla's (1994) raw overlap O = Σ_i min(p_i, 1/S).
func Bulla1994O(p []float64) float64 {
	s := float64(len(p))
	var sum float64
	for _, pi := range p {
		sum += math.Min(pi, 1/s)
	}

	return sum
}

// Bulla1994E computes Bulla's (1994) evenness E = (O − 1/S)/(1 − 1/S).
func Bulla1994E(p []float64) (float64, error) {
	s := float64(len(p))
	if s < 2 {
		return 0, ErrSingleSpecies
	}
	o := Bulla1994O(p)

	return (o - 1/s) / (1 - 1/s), nil
}

// SmithWilson1996Evar computes Smith & Wilson's (1996) E_var: 1 −
// (2/π)·arctan(Var(ln p_i)), the variance taken over ln of every
// nonzero proportion.
func SmithWilson1996Evar(p []float64) float64 {
	var sumLn, count float64
	logs := make([]float64, 0, len(p))
	for _, pi := range p {
		if pi <= 0 {
			continue
		}
		l := math.Log(pi)
		logs = append(logs, l)
		sumLn += l
		count++
	}
	if count == 0 {
		return 0
	}
	mean := sumLn / count

	var variance float64
	for _, l := range logs {
		d := l - mean
		variance += d * d
	}
	variance /= count

	return 1 - (2/math.Pi)*math.Atan(variance)
}

// Junge1994 computes Junge's (1994, p.22) evenness H/ln(N) over the
// Shannon entropy and the total absolute abundance N.
func Junge1994(p []float64, totalAbundance uint64) float64 {
	if totalAbundance <= 1 {
		return 0
	}

	return Shannon(p) / math.Log(float64(totalAbundance))
}

// HillEvennessRatio computes the generalized Hill-evenness ratio
// Hill(p, high)/Hill(p, low), the "Jungebergere and Hill-evenness
// variants" family spec.md cites without pinning an exact order pair.
func HillEvennessRatio(p []float64, low, high float64) float64 {
	return Hill(p, high) / Hill(p, low)
}
