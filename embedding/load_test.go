package embedding

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeWord2Vec writes a minimal binary word2vec file for entries,
// each a key plus its vector, matching §6's exact record framing.
func writeWord2Vec(t *testing.T, entries map[string][]float32) string {
	t.Helper()

	var dim int
	for _, v := range entries {
		dim = len(v)
		break
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d\n", len(entries), dim)
	// Deterministic order for test readability.
	for _, key := range []string{"cat", "dog", "car"} {
		v, ok := entries[key]
		if !ok {
			continue
		}
		buf.WriteString(key)
		buf.WriteByte(' ')
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
		buf.WriteByte('\n')
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "vectors.bin")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	return path
}

func TestLoad_Basic(t *testing.T) {
	path := writeWord2Vec(t, map[string][]float32{
		"cat": {1, 0, 0},
		"dog": {0, 1, 0},
		"car": {0.9, 0.1, 0},
	})

	idx, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, 3, idx.Dim())

	e, ok := idx.Lookup("dog")
	require.True(t, ok)
	assert.Equal(t, []float32{0, 1, 0}, e.Vector)

	_, ok = idx.Lookup("bird")
	assert.False(t, ok)

	discarded := idx.DiscardedKeys()
	require.Len(t, discarded, 1)
	assert.Equal(t, "bird", discarded[0].Key)
	assert.Equal(t, uint64(1), discarded[0].Value)
}

func TestFindClosest_SkipsSelf(t *testing.T) {
	path := writeWord2Vec(t, map[string][]float32{
		"cat": {1, 0, 0},
		"car": {0.95, 0.05, 0},
		"dog": {0, 1, 0},
	})
	idx, err := Load(path)
	require.NoError(t, err)

	closest, d, err := idx.FindClosest("cat")
	require.NoError(t, err)
	assert.Equal(t, "car", closest.Key)
	assert.Less(t, d, float32(1))
}

func TestEntry_ActivateOnce(t *testing.T) {
	e := &Entry{Key: "x"}
	assert.True(t, e.Activate(5))
	assert.False(t, e.Activate(6))
	idx, active := e.NodeIndex()
	assert.True(t, active)
	assert.EqualValues(t, 5, idx)
}
