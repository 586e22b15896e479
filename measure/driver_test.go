package measure

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingometrics/diversutils/ingest"
)

// writeWord2Vec writes a minimal binary word2vec file, matching §6's
// exact record framing (key, then little-endian f32s, then newline).
func writeWord2Vec(t *testing.T, dir string, entries map[string][]float32, order []string) string {
	t.Helper()

	var dim int
	for _, v := range entries {
		dim = len(v)
		break
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d\n", len(entries), dim)
	for _, key := range order {
		v := entries[key]
		buf.WriteString(key)
		buf.WriteByte(' ')
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
		buf.WriteByte('\n')
	}

	path := filepath.Join(dir, "vectors.bin")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	return path
}

func writeCUPT(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDriver_TwoTypeShannonCheckpoint(t *testing.T) {
	dir := t.TempDir()
	vecPath := writeWord2Vec(t, dir, map[string][]float32{
		"cat": {1, 0}, "dog": {0, 1},
	}, []string{"cat", "dog"})

	doc := "1\tcat\tcat\tNOUN\t_\t_\t0\troot\t_\t_\n" +
		"2\tcat\tcat\tNOUN\t_\t_\t0\troot\t_\t_\n" +
		"3\tcat\tcat\tNOUN\t_\t_\t0\troot\t_\t_\n" +
		"4\tdog\tdog\tNOUN\t_\t_\t0\troot\t_\t_\n"
	filePath := writeCUPT(t, dir, "doc.conllu", doc)

	indices := NewIndexSet()
	indices.Enabled[IndexShannon] = true
	indices.Enabled[IndexShannonHill] = true

	cfg := Config{
		EmbeddingPath:     vecPath,
		TargetColumn:      ingest.TargetForm,
		FileReaderThreads: 1,
		DocumentStep:      1,
		Indices:           indices,
	}

	d, err := NewDriver(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	result, err := d.Run([]string{filePath})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	shannonCol := -1
	for i, h := range result.Header {
		if h == IndexShannon {
			shannonCol = i
		}
	}
	require.GreaterOrEqual(t, shannonCol, 0)
	assert.InDelta(t, 0.5623, parseFloat(t, row[shannonCol]), 1e-3)
}

func TestDriver_CheckpointDedup_IdenticalDocuments(t *testing.T) {
	dir := t.TempDir()
	vecPath := writeWord2Vec(t, dir, map[string][]float32{
		"cat": {1, 0}, "dog": {0, 1},
	}, []string{"cat", "dog"})

	doc := "1\tcat\tcat\tNOUN\t_\t_\t0\troot\t_\t_\n" +
		"2\tdog\tdog\tNOUN\t_\t_\t0\troot\t_\t_\n"
	file1 := writeCUPT(t, dir, "a.conllu", doc)
	file2 := writeCUPT(t, dir, "b.conllu", doc)

	indices := NewIndexSet()
	indices.Enabled[IndexShannon] = true

	cfg := Config{
		EmbeddingPath:     vecPath,
		TargetColumn:      ingest.TargetForm,
		FileReaderThreads: 1,
		DocumentStep:      1,
		Indices:           indices,
	}

	d, err := NewDriver(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	result, err := d.Run([]string{file1, file2})
	require.NoError(t, err)

	// First document's checkpoint fires and emits; the second document
	// leaves (s, n_nodes) unchanged, so it is deduplicated away, and the
	// forced final snapshot is unchanged too (§8 scenario 6).
	assert.Len(t, result.Rows, 1)
}

func parseFloat(t *testing.T, s string) float64 {
	t.Helper()
	var v float64
	_, err := fmt.Sscanf(s, "%g", &v)
	require.NoError(t, err)

	return v
}
