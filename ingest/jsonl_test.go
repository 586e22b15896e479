package ingest

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLReader_ExtractsIDAndContent(t *testing.T) {
	line := `{"id": "doc1", "text": "hello \"world\"\n", "meta": {"lang": "en"}, "tags": ["a", "b"]}`
	r := NewJSONLReader(strings.NewReader(line), "text")

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "doc1", rec.ID)
	assert.Equal(t, "hello \"world\"\n", rec.Content)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONLReader_SkipsBlankLines(t *testing.T) {
	input := "\n" + `{"id": "a", "body": "x"}` + "\n\n"
	r := NewJSONLReader(strings.NewReader(input), "body")

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", rec.ID)
	assert.Equal(t, "x", rec.Content)
}

func TestJSONLReader_MultipleLines(t *testing.T) {
	input := `{"id": "1", "body": "one"}` + "\n" + `{"id": "2", "body": "two"}`
	r := NewJSONLReader(strings.NewReader(input), "body")

	rec1, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", rec1.Content)

	rec2, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "2", rec2.ID)
	assert.Equal(t, "two", rec2.Content)
}

func TestParseJSONString_EscapeHandling(t *testing.T) {
	val, next, err := parseJSONString(`"a\tb\nc"`, 0)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc", val)
	assert.Equal(t, len(`"a\tb\nc"`), next)
}
