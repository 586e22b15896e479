package distance

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine_Identity(t *testing.T) {
	v := []float32{1, 2, 3, 4}
	assert.InDelta(t, 0, Scalar{}.Cosine(v, v), 1e-6)
	assert.InDelta(t, 0, SIMD256{}.Cosine(v, v), 1e-6)
}

func TestCosine_Symmetry(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{0, 1, 0}
	assert.Equal(t, Scalar{}.Cosine(a, b), Scalar{}.Cosine(b, a))
}

func TestCosine_Orthogonal(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 1.0, Scalar{}.Cosine(a, b), 1e-6)
}

func TestCosine_Opposite(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}
	assert.InDelta(t, 2.0, Scalar{}.Cosine(a, b), 1e-6)
}

func TestCosine_ScalarSIMDParity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randUnit(rng, 100)
	b := randUnit(rng, 100)

	scalar := Scalar{}.Cosine(a, b)
	simd := SIMD256{}.Cosine(a, b)
	assert.InDelta(t, float64(scalar), float64(simd), 1e-5)
}

func TestCosine_ZeroVector(t *testing.T) {
	z := []float32{0, 0, 0}
	v := []float32{1, 2, 3}
	assert.Equal(t, float32(2), Scalar{}.Cosine(z, v))
}

func randUnit(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	var norm float64
	for i := range v {
		v[i] = float32(rng.NormFloat64())
		norm += float64(v[i]) * float64(v[i])
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}

	return v
}

func TestDefault_ReturnsBackend(t *testing.T) {
	b := Default()
	assert.NotEmpty(t, b.Name())
}
