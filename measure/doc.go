// Package measure drives the per-file worker pool that ingests corpus
// files into a typegraph.Graph and periodically checkpoints a battery
// of diversity indices to TSV (§4.K).
//
// Three thread pools exist in sequence for a single checkpoint (§5):
// file-reader workers feed the graph concurrently, then one worker wins
// the checkpoint race, takes the graph lock, and fans out the
// matrix-compute and row-aggregator pools to fill in the
// distance-weighted indices before releasing the lock.
package measure
