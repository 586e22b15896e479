package diversity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingometrics/diversutils/distance"
	"github.com/lingometrics/diversutils/distheap"
	"github.com/lingometrics/diversutils/mst"
)

func TestFunctionalEvenness_RegularStarIsOne(t *testing.T) {
	// Three equidistant leaves around hub node 0, built directly as an MST so
	// every edge has equal weight regardless of distheap's own ordering.
	tree := &mst.MST{
		Edges: []distheap.Edge{
			{A: 0, B: 1, Dist: 1},
			{A: 0, B: 2, Dist: 1},
			{A: 0, B: 3, Dist: 1},
		},
		Nodes:          []int{0, 1, 2, 3},
		NumActiveNodes: 4,
		NumActiveEdges: 3,
	}
	p := []float64{0.25, 0.25, 0.25, 0.25}

	got, err := FunctionalEvenness(tree, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestFunctionalEvenness_WrongEdgeCountErrors(t *testing.T) {
	tree := &mst.MST{Edges: []distheap.Edge{{A: 0, B: 1, Dist: 1}}}
	_, err := FunctionalEvenness(tree, []float64{0.5, 0.25, 0.25})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFunctionalDispersion_IdenticalVectorsIsZero(t *testing.T) {
	vecs := [][]float32{{1, 0}, {1, 0}, {1, 0}}
	p := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	got, err := FunctionalDispersion(vecs, p, distance.Scalar{})
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-6)
}

func TestFunctionalDivergence_DimensionMismatchErrors(t *testing.T) {
	_, err := FunctionalDivergence([][]float32{{1, 0}}, []float64{0.5, 0.5}, distance.Scalar{})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
