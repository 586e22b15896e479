package embedding

import "errors"

// ErrEmbeddingLoad wraps any failure encountered while parsing a
// word2vec binary file: truncated records, a dimension mismatch between
// the header and a record, or the underlying I/O error.
var ErrEmbeddingLoad = errors.New("embedding: load error")

// ErrKeyTooLong is returned when a key in the source file exceeds
// MaxKeyBytes.
var ErrKeyTooLong = errors.New("embedding: key exceeds max length")

// ErrKeyNotFound is returned by FindClosest when its key is not in the
// index. KeyToIndex and Lookup report a miss with a false result instead.
var ErrKeyNotFound = errors.New("embedding: key not found")

// ErrEmptyIndex is returned by FindClosest when the index has fewer
// than two entries (nothing to compare against after excluding self).
var ErrEmptyIndex = errors.New("embedding: index has no other entries to compare against")
