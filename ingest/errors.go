package ingest

import "errors"

// ErrMalformedToken is returned when a CUPT line has fewer than the
// required ten tab-separated columns.
var ErrMalformedToken = errors.New("ingest: malformed CUPT token line")

// ErrMalformedRecord is returned when a JSONL line cannot be parsed
// enough to locate its "id" and content-key fields.
var ErrMalformedRecord = errors.New("ingest: malformed JSONL record")
