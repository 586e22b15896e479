// Package diversutils (root) is documentation-only; it names the module
// and links the subpackages that make up the lexical-diversity
// measurement engine.
//
// What is diversutils?
//
//	A thread-safe engine that ingests tokenized corpora, maps tokens to
//	pretrained dense embeddings, maintains a frequency-weighted
//	population of distinct types, and periodically emits a battery of
//	lexical-diversity indices — both frequency-only and
//	embedding-distance-weighted.
//
// Subpackages:
//
//	sortedarray/ — keyed container with binary search and heap layout
//	stats/       — mean/stddev primitives
//	distance/    — cosine distance, scalar and 8-lane unrolled backends
//	embedding/   — word2vec binary loader and key→vector index
//	typegraph/   — growing graph of observed types with proportions
//	distmatrix/  — parallel full-matrix and streamed-row distance engine
//	distheap/    — lazy-pop min-heap over pairwise distances
//	mst/         — Prim-style minimum spanning tree over the distance heap
//	zipf/        — bracketed Zipfian exponent fitter
//	diversity/   — non-disparity and disparity diversity indices
//	ingest/      — CoNLL-U/CUPT and JSONL corpus readers
//	measure/     — per-file worker pool, checkpoint gating, TSV emission
//
// See cmd/diversutils for the command-line entrypoint.
package diversutils
