package embedding

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lingometrics/diversutils/distance"
	"github.com/lingometrics/diversutils/sortedarray"
)

func keyCmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Load reads a binary word2vec file from path and returns a fully
// populated, sorted-by-key Index.
//
// Stage 1 (Validate): open file, parse "<N> <D>\n" header.
// Stage 2 (Prepare): allocate the N·D float32 buffer and entry array.
// Stage 3 (Execute): read N records of key + D little-endian float32s.
// Stage 4 (Finalize): sort entries by key and return the Index.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("embedding: open %s: %w: %v", path, ErrEmbeddingLoad, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	n, d, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	buffer := make([]float32, n*d)
	arr, err := sortedarray.New[string, *Entry](keyCmp, sortedarray.LayoutLinear)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w: %v", ErrEmbeddingLoad, err)
	}

	for i := 0; i < n; i++ {
		key, err := readKey(r)
		if err != nil {
			return nil, fmt.Errorf("embedding: record %d key: %w: %v", i, ErrEmbeddingLoad, err)
		}
		vec := buffer[i*d : (i+1)*d]
		if err := binary.Read(r, binary.LittleEndian, vec); err != nil {
			return nil, fmt.Errorf("embedding: record %d vector: %w: %v", i, ErrEmbeddingLoad, err)
		}
		// Consume the trailing newline that terminates each record.
		if b, err := r.ReadByte(); err != nil && err != io.EOF {
			return nil, fmt.Errorf("embedding: record %d trailing byte: %w: %v", i, ErrEmbeddingLoad, err)
		} else if err == nil && b != '\n' {
			if err := r.UnreadByte(); err != nil {
				return nil, fmt.Errorf("embedding: record %d unread: %w: %v", i, ErrEmbeddingLoad, err)
			}
		}

		if _, _, err := arr.Insert(key, &Entry{Key: key, Vector: vec}, sortedarray.ModeOverwriteIfPresent); err != nil {
			return nil, fmt.Errorf("embedding: record %d insert: %w: %v", i, ErrEmbeddingLoad, err)
		}
	}

	missed, err := sortedarray.New[string, uint64](keyCmp, sortedarray.LayoutLinear)
	if err != nil {
		return nil, fmt.Errorf("embedding: %w: %v", ErrEmbeddingLoad, err)
	}

	return &Index{
		dim:     d,
		buffer:  buffer,
		arr:     arr,
		missed:  missed,
		backend: distance.Default(),
	}, nil
}

// readHeader parses the ASCII "<N> <D>\n" header line.
func readHeader(r *bufio.Reader) (n, d int, err error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return 0, 0, fmt.Errorf("embedding: read header: %w: %v", ErrEmbeddingLoad, err)
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("embedding: malformed header %q: %w", line, ErrEmbeddingLoad)
	}
	n, errN := strconv.Atoi(fields[0])
	d, errD := strconv.Atoi(fields[1])
	if errN != nil || errD != nil || n < 0 || d <= 0 {
		return 0, 0, fmt.Errorf("embedding: malformed header %q: %w", line, ErrEmbeddingLoad)
	}

	return n, d, nil
}

// readKey reads a space-terminated UTF-8 key, enforcing MaxKeyBytes.
func readKey(r *bufio.Reader) (string, error) {
	key, err := r.ReadString(' ')
	if err != nil {
		return "", err
	}
	key = strings.TrimSuffix(key, " ")
	if len(key) > MaxKeyBytes {
		return "", ErrKeyTooLong
	}

	return key, nil
}
