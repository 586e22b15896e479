package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingometrics/diversutils/ingest"
	"github.com/lingometrics/diversutils/measure"
)

func TestParseArgs_AmbientFlags(t *testing.T) {
	cfg, err := parseArgs([]string{
		"--w2v_path=vectors.bin",
		"--input_path=files.txt",
		"--output_path=out.tsv",
		"--target_column=UD_LEMMA",
		"--num_file_reading_threads=4",
		"--sentence_count_recompute_step=100",
		"--document_count_recompute_step_log10=1",
	})
	require.NoError(t, err)

	assert.Equal(t, "vectors.bin", cfg.EmbeddingPath)
	assert.Equal(t, "files.txt", cfg.InputListPath)
	assert.Equal(t, "out.tsv", cfg.OutputPath)
	assert.Equal(t, ingest.TargetLemma, cfg.TargetColumn)
	assert.Equal(t, 4, cfg.FileReaderThreads)
	assert.Equal(t, uint64(100), cfg.SentenceStep)
	assert.True(t, cfg.DocumentLog10)
}

func TestParseArgs_IndexFlags(t *testing.T) {
	cfg, err := parseArgs([]string{
		"--enable_" + measure.IndexShannon,
		"--enable_" + measure.IndexStirling,
		"--" + measure.IndexStirling + "_alpha=2",
		"--" + measure.IndexStirling + "_beta=0.5",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Indices.On(measure.IndexShannon))
	assert.True(t, cfg.Indices.On(measure.IndexStirling))
	assert.False(t, cfg.Indices.On(measure.IndexPairwise))
	assert.Equal(t, 2.0, cfg.Indices.A(measure.IndexStirling, 1))
	assert.Equal(t, 0.5, cfg.Indices.B(measure.IndexStirling, 1))
}

func TestParseArgs_UnknownFlagIsFatal(t *testing.T) {
	_, err := parseArgs([]string{"--not_a_real_flag=1"})
	require.Error(t, err)
}

func TestParseArgs_UnknownTargetColumn(t *testing.T) {
	_, err := parseArgs([]string{"--target_column=UD_BOGUS"})
	require.Error(t, err)
}
