package ingest

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCUPTReader_TwoSentences(t *testing.T) {
	input := strings.Join([]string{
		"# sent_id = s1",
		"# text = The cat sat.",
		"1\tThe\tthe\tDET\t_\t_\t2\tdet\t_\t_",
		"2\tcat\tcat\tNOUN\t_\t_\t3\tnsubj\t_\t_",
		"3\tsat\tsit\tVERB\t_\t_\t0\troot\t_\t_",
		"",
		"# sent_id = s2",
		"1\tDogs\tdog\tNOUN\t_\t_\t0\troot\t_\t_",
		"",
	}, "\n")

	r := NewCUPTReader(strings.NewReader(input))

	s1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "s1", s1.ID)
	require.Len(t, s1.Tokens, 3)
	assert.Equal(t, "cat", s1.Tokens[1].Form)
	assert.Equal(t, "sit", s1.Tokens[2].Lemma)

	s2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "s2", s2.ID)
	require.Len(t, s2.Tokens, 1)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCUPTReader_SourceSentIDFallback(t *testing.T) {
	input := strings.Join([]string{
		"# source_sent_id = orig-42",
		"1\tHi\thi\tINTJ\t_\t_\t0\troot\t_\t_",
		"",
	}, "\n")

	r := NewCUPTReader(strings.NewReader(input))
	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "orig-42", s.ID)
}

func TestCUPTReader_NoTrailingBlankLineStillFlushes(t *testing.T) {
	input := "1\tWord\tword\tNOUN\t_\t_\t0\troot\t_\t_"
	r := NewCUPTReader(strings.NewReader(input))
	s, err := r.Next()
	require.NoError(t, err)
	assert.Len(t, s.Tokens, 1)
}

func TestCUPTReader_MWEColumn(t *testing.T) {
	input := "1\tkick\tkick\tVERB\t_\t_\t0\troot\t_\t_\t1:VID"
	r := NewCUPTReader(strings.NewReader(input))
	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "1:VID", s.Tokens[0].MWE)
}
