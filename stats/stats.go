// Package stats provides the engine's mean/stdev primitives in f32 and
// f64, computed with a straight two-pass algorithm. Callers must ensure
// finite inputs: no NaN/Inf handling is performed (spec §4.B).
package stats

import "math"

// Mean64 returns the arithmetic mean of p. Returns 0 for an empty slice.
func Mean64(p []float64) float64 {
	if len(p) == 0 {
		return 0
	}
	var sum float64
	for _, v := range p {
		sum += v
	}

	return sum / float64(len(p))
}

// Mean32 is the f32 counterpart of Mean64.
func Mean32(p []float32) float32 {
	if len(p) == 0 {
		return 0
	}
	var sum float32
	for _, v := range p {
		sum += v
	}

	return sum / float32(len(p))
}

// Stddev64 returns the population standard deviation of p, via a second
// pass over the already-computed mean.
func Stddev64(p []float64) float64 {
	_, sd := MeanAndStddev64(p)

	return sd
}

// Stddev32 is the f32 counterpart of Stddev64.
func Stddev32(p []float32) float32 {
	_, sd := MeanAndStddev32(p)

	return sd
}

// MeanAndStddev64 computes mean and population standard deviation of p
// in one logical two-pass pass (mean, then sum of squared deviations).
func MeanAndStddev64(p []float64) (mean, stddev float64) {
	if len(p) == 0 {
		return 0, 0
	}
	mean = Mean64(p)

	var sumSq float64
	for _, v := range p {
		d := v - mean
		sumSq += d * d
	}
	stddev = math.Sqrt(sumSq / float64(len(p)))

	return mean, stddev
}

// MeanAndStddev32 is the f32 counterpart of MeanAndStddev64.
func MeanAndStddev32(p []float32) (mean, stddev float32) {
	if len(p) == 0 {
		return 0, 0
	}
	mean = Mean32(p)

	var sumSq float32
	for _, v := range p {
		d := v - mean
		sumSq += d * d
	}
	stddev = float32(math.Sqrt(float64(sumSq) / float64(len(p))))

	return mean, stddev
}
