// Package embedding loads a binary word2vec file into an O(log N)
// key→vector index and tracks, per entry, the mutable state the type
// graph needs to attach a population node to it (§4.D, §4.E).
//
// File format (§6): an ASCII header line "<N> <D>\n", then N records of
// a space-terminated UTF-8 key followed by D little-endian float32
// values and a newline. Keys longer than MaxKeyBytes are rejected.
package embedding
