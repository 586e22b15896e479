// Package sortedarray provides a generic, thread-safe, keyed container
// used as the engine's "keyed slot" primitive: the embedding index's
// key→entry lookup and its discarded-keys diagnostics both sit on top of
// it. The distance heap (package distheap) does not use it; it keeps its
// own slice.
//
// Two layouts are available:
//
//   - Linear: a binary-searched sorted prefix plus a small unsorted tail
//     that is bulk re-sorted once it overflows a fixed threshold. Good
//     for write-heavy, append-then-batch workloads (the embedding loader
//     fills one of these at load time and then only reads it).
//   - Tree: a binary-heap-style array with sift-up/sift-down on every
//     insert. Good when the comparator ordering must hold after every
//     single insert.
//
// Both layouts support three insert modes: Always, OnlyIfAbsent, and
// OverwriteIfPresent. A single sync.Mutex guards concurrent inserts;
// callers needing per-key granularity (the embedding index) add their
// own finer-grained lock around the elements they store, exactly as the
// teacher's core.Graph pairs a coarse structural lock with per-entry
// state.
package sortedarray
