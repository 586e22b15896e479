package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderColumns_OnlyEnabledIndices(t *testing.T) {
	indices := NewIndexSet()
	indices.Enabled[IndexShannon] = true
	indices.Enabled[IndexPairwise] = true

	cols := headerColumns(indices)
	assert.Equal(t, []string{"sentence_count", "document_count", "n_nodes", "zipf_s", IndexShannon, IndexPairwise}, cols)
}

func TestFormatRow_MatchesHeaderOrder(t *testing.T) {
	indices := NewIndexSet()
	indices.Enabled[IndexShannon] = true

	row := Row{SentenceCount: 3, DocumentCount: 1, NumNodes: 5, ZipfS: 1.2, Values: map[string]float64{IndexShannon: 0.5623}}
	out := formatRow(row, indices)
	assert.Equal(t, []string{"3", "1", "5", "1.2", "0.5623"}, out)
}

func TestComputeIndices_NonDisparityOnly(t *testing.T) {
	indices := NewIndexSet()
	indices.Enabled[IndexShannon] = true
	indices.Enabled[IndexSimpson] = true

	p := []float64{0.75, 0.25}
	values := computeIndices(indices, p, []uint64{3, 1}, 0, nil, nil, nil, nil)
	assert.InDelta(t, 0.5623, values[IndexShannon], 1e-3)
	assert.InDelta(t, 0.625, values[IndexSimpson], 1e-9)
	assert.Len(t, values, 2)
}
