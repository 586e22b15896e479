package distance

import (
	"math"

	"golang.org/x/sys/cpu"
)

// CosineBackend computes cosine distance between two equal-length f32
// vectors. Implementations must satisfy: Cosine(a,a)=0, symmetry, and a
// result in [0, 2] for any non-zero inputs.
type CosineBackend interface {
	// Cosine returns the cosine distance between a and b.
	// Panics if len(a) != len(b); callers are expected to validate
	// dimensionality once at the embedding-index boundary rather than
	// on every pairwise call.
	Cosine(a, b []float32) float32

	// Name identifies the backend for logging/diagnostics.
	Name() string
}

// Default returns the best CosineBackend the current host supports:
// SIMD256 when AVX2 is available, Scalar otherwise.
func Default() CosineBackend {
	if cpu.X86.HasAVX2 {
		return SIMD256{}
	}

	return Scalar{}
}

// Scalar is the portable, lane-free CosineBackend.
type Scalar struct{}

// Name implements CosineBackend.
func (Scalar) Name() string { return "scalar" }

// Cosine implements CosineBackend.
func (Scalar) Cosine(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("distance: dimension mismatch")
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	return cosineFromSums(dot, normA, normB)
}

// SIMD256 accumulates in 8 independent float32 lanes and reduces
// horizontally at the end, mirroring an AVX2 8-wide add/mul pipeline.
// True AVX2 intrinsics require hand-written assembly the retrieved
// examples don't provide a safe template for (DESIGN.md); this
// implementation gives the compiler eight independent accumulation
// chains to auto-vectorize and keeps the same numeric contract.
type SIMD256 struct{}

// Name implements CosineBackend.
func (SIMD256) Name() string { return "simd256" }

const lanes = 8

// Cosine implements CosineBackend.
func (SIMD256) Cosine(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("distance: dimension mismatch")
	}

	var dot, normA, normB [lanes]float32
	n := len(a)
	full := n - n%lanes

	var i int
	for i = 0; i < full; i += lanes {
		for l := 0; l < lanes; l++ {
			dot[l] += a[i+l] * b[i+l]
			normA[l] += a[i+l] * a[i+l]
			normB[l] += b[i+l] * b[i+l]
		}
	}

	var dotSum, normASum, normBSum float32
	for l := 0; l < lanes; l++ {
		dotSum += dot[l]
		normASum += normA[l]
		normBSum += normB[l]
	}
	for ; i < n; i++ {
		dotSum += a[i] * b[i]
		normASum += a[i] * a[i]
		normBSum += b[i] * b[i]
	}

	return cosineFromSums(dotSum, normASum, normBSum)
}

// cosineFromSums turns accumulated dot/norm sums into a cosine distance,
// clamping the trivial zero-vector case to the maximum distance (2)
// rather than dividing by zero.
func cosineFromSums(dot, normA, normB float32) float32 {
	denom := float32(math.Sqrt(float64(normA)) * math.Sqrt(float64(normB)))
	if denom == 0 {
		return 2
	}

	d := 1 - dot/denom
	if d < 0 {
		d = 0
	}
	if d > 2 {
		d = 2
	}

	return d
}
