// Package distmatrix builds dense pairwise cosine-distance matrices
// over a type graph's embedding vectors, in parallel, plus a streamed
// single-row / batched-row variant for the iterative diversity
// aggregators (§4.F).
//
// Thread spawn/join errors are fatal (§4.F, §7): ComputeFull and
// ComputeRowBatch return an error instead of panicking, and a non-nil
// error there means the caller should abort the run. ComputeRow returns
// no error; Matrix.At panics on an unknown FPMode.
package distmatrix
