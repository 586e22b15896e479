// Package distance implements cosine distance between dense f32 vectors,
// the core primitive the rest of the engine weights its disparity
// indices by.
//
//	d(a, b) = 1 - (a·b) / (‖a‖·‖b‖)
//
// Contracts (spec §4.C): d(a,a)=0, d(a,b)=d(b,a), result in [0, 2].
//
// Two CosineBackend implementations are provided: Scalar (portable) and
// SIMD256 (8-lane unrolled accumulation, selected automatically when the
// host advertises AVX2 via golang.org/x/sys/cpu). DESIGN NOTES §9 calls
// for CPUID-style dispatch behind a trait/interface; this package is
// that interface.
package distance
