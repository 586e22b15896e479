// Package typegraph maintains the growing population of distinct
// observed types (§3, §4.E): one Node per type active in the current
// measurement run, each carrying an absolute occurrence count and (once
// ComputeRelativeProportions runs) a relative proportion.
//
// Two-level locking mirrors the teacher's core.Graph design (DESIGN
// NOTES §9): Graph.mu is the coarse "nodes" mutex guarding growth and
// ComputeRelativeProportions; each Node additionally has its own mutex
// for the common-case absolute-count increment. The coarse lock is held
// only briefly to look the node up, and the increment itself runs under
// the node's own mutex.
//
// Nodes are referenced by index, never by pointer address, into the
// owning Graph's slice — growth therefore never invalidates a caller's
// reference (DESIGN NOTES §9's explicit re-architecture instruction).
package typegraph
