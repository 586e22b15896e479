package ingest

import (
	"bufio"
	"io"
	"strings"
)

// Record is the pair of fields the core reads out of one JSONL line.
type Record struct {
	ID      string
	Content string
}

// JSONLReader streams (id, content) pairs out of a one-object-per-line
// JSONL file (§6). It is not a general JSON parser: it locates exactly
// two keys — "id" and a caller-supplied content key — honours the
// backslash escapes \n \r \t \" \\, and skips every other key's value,
// including nested arrays and objects, without ever building a full
// document tree.
type JSONLReader struct {
	sc         *bufio.Scanner
	contentKey string
}

// maxLineBytes caps a single JSONL/CUPT line, well above bufio.Scanner's
// default 64 KiB token limit: a long corpus document's content field is
// routine, valid input, not a reason for Next to return bufio.ErrTooLong
// and abort the whole run.
const maxLineBytes = 16 * 1024 * 1024

// NewJSONLReader wraps r, extracting contentKey's value from each line.
func NewJSONLReader(r io.Reader, contentKey string) *JSONLReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &JSONLReader{sc: sc, contentKey: contentKey}
}

// Next returns the next record, or io.EOF once the file is exhausted.
// Blank lines are skipped.
func (r *JSONLReader) Next() (*Record, error) {
	for r.sc.Scan() {
		line := r.sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		id, content, err := parseJSONLLine(line, r.contentKey)
		if err != nil {
			return nil, err
		}

		return &Record{ID: id, Content: content}, nil
	}

	return nil, io.EOF
}

// parseJSONLLine extracts the "id" and contentKey fields from one JSON
// object, skipping every other key's value (string, number, bool, null,
// array, or nested object) without parsing it.
func parseJSONLLine(line, contentKey string) (id, content string, err error) {
	i := strings.IndexByte(line, '{')
	if i < 0 {
		return "", "", ErrMalformedRecord
	}
	i++ // past '{'

	n := len(line)
	for i < n {
		for i < n && isJSONSpace(line[i]) || (i < n && line[i] == ',') {
			i++
		}
		if i >= n || line[i] == '}' {
			break
		}
		if line[i] != '"' {
			return "", "", ErrMalformedRecord
		}

		key, next, err := parseJSONString(line, i)
		if err != nil {
			return "", "", err
		}
		i = next

		for i < n && line[i] != ':' {
			i++
		}
		if i >= n {
			return "", "", ErrMalformedRecord
		}
		i++ // past ':'
		for i < n && isJSONSpace(line[i]) {
			i++
		}
		if i >= n {
			return "", "", ErrMalformedRecord
		}

		switch line[i] {
		case '"':
			val, next, err := parseJSONString(line, i)
			if err != nil {
				return "", "", err
			}
			i = next
			switch key {
			case "id":
				id = val
			case contentKey:
				content = val
			}
		case '[':
			i, err = skipJSONBracket(line, i, '[', ']')
			if err != nil {
				return "", "", err
			}
		case '{':
			i, err = skipJSONBracket(line, i, '{', '}')
			if err != nil {
				return "", "", err
			}
		default:
			for i < n && line[i] != ',' && line[i] != '}' {
				i++
			}
		}
	}

	return id, content, nil
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// parseJSONString decodes a quoted JSON string starting at s[start]
// (which must be '"'), honouring \n \r \t \" \\ and passing any other
// escaped byte through unmodified. Returns the decoded value and the
// index just past the closing quote.
func parseJSONString(s string, start int) (string, int, error) {
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		c := s[i]
		if c == '"' {
			return b.String(), i + 1, nil
		}
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(s[i+1])
			}
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}

	return "", 0, ErrMalformedRecord
}

// skipJSONBracket advances past a bracketed value (array or object)
// starting at s[start] == open, tracking nesting depth and skipping
// string contents so brackets inside strings aren't miscounted.
func skipJSONBracket(s string, start int, open, close byte) (int, error) {
	depth := 0
	i := start
	for i < len(s) {
		c := s[i]
		if c == '"' {
			_, next, err := parseJSONString(s, i)
			if err != nil {
				return 0, err
			}
			i = next

			continue
		}
		if c == open {
			depth++
		} else if c == close {
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
		i++
	}

	return 0, ErrMalformedRecord
}
