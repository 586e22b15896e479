package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingometrics/diversutils/measure"
)

func TestReadFileList_SkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "files.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.conllu\n\nb.jsonl\n"), 0o644))

	list, err := readFileList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.conllu", "b.jsonl"}, list)
}

func TestWriteResult_EmitsSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "result.tsv")

	result := &measure.Result{
		Header:        []string{"sentence_count", "shannon"},
		Rows:          [][]string{{"1", "0.5623"}},
		TimingHeader:  []string{"checkpoint", "proportions"},
		TimingRows:    [][]string{{"0", "123"}},
		MemoryHeader:  []string{"checkpoint", "proportions"},
		MemoryRows:    [][]string{{"0", "456"}},
		DiscardedKeys: map[string]uint64{"xyzzy": 3},
	}

	require.NoError(t, writeResult(out, result))

	for _, suffix := range []string{"result.tsv", "result_timing.tsv", "result_memory.tsv", "result_discarded.tsv"} {
		_, err := os.Stat(filepath.Join(dir, suffix))
		assert.NoError(t, err, suffix)
	}

	data, err := os.ReadFile(filepath.Join(dir, "result_discarded.tsv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "xyzzy\t3\n")
}
