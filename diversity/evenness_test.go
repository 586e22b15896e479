package diversity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPielou1969_UniformDistributionIsOne(t *testing.T) {
	p := []float64{0.25, 0.25, 0.25, 0.25}
	j, err := Pielou1969(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, j, 1e-9)
}

func TestPielou1975_MatchesPielou1969(t *testing.T) {
	p := []float64{0.5, 0.3, 0.2}
	j69, _ := Pielou1969(p)
	j75, _ := Pielou1975(p)
	assert.Equal(t, j69, j75)
}

func TestPielou1977_DividesByLnDimensions(t *testing.T) {
	p := []float64{0.5, 0.5}
	got := Pielou1977(p, 300)
	want := Shannon(p) / 5.703782474656201 // ln(300)
	assert.InDelta(t, want, got, 1e-6)
}

func TestHeip_SingleSpeciesErrors(t *testing.T) {
	_, err := Heip([]float64{1.0})
	assert.ErrorIs(t, err, ErrSingleSpecies)
}

func TestCamargo1993_UniformDistributionIsOne(t *testing.T) {
	p := []float64{0.25, 0.25, 0.25, 0.25}
	assert.InDelta(t, 1.0, Camargo1993(p), 1e-12)
}

func TestBulla1994_UniformDistributionIsOne(t *testing.T) {
	p := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	e, err := Bulla1994E(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, e, 1e-9)
}

func TestSmithWilson1996Evar_UniformDistributionIsOne(t *testing.T) {
	p := []float64{0.2, 0.2, 0.2, 0.2, 0.2}
	assert.InDelta(t, 1.0, SmithWilson1996Evar(p), 1e-9)
}

func TestAlatalo1981_UniformDistributionIsOne(t *testing.T) {
	p := []float64{0.25, 0.25, 0.25, 0.25}
	f, err := Alatalo1981(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, f, 1e-9)
}
