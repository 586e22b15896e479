package embedding

import "sync"

// MaxKeyBytes is the fixed cap on a key's UTF-8 byte length (§6: "≈64
// bytes").
const MaxKeyBytes = 64

// Entry is one embedding record: immutable key/vector after load, with
// a per-entry mutex guarding the mutable fields the type graph flips
// when the key becomes an active node (§3: "Mutable under a per-entry
// lock").
type Entry struct {
	// Key is the immutable surface form this entry represents.
	Key string
	// Vector is a slice into the index's shared N·D buffer.
	Vector []float32

	mu sync.Mutex
	// active marks whether this entry currently backs a live node in
	// the caller's type graph.
	active bool
	// graphNodeIndex is the back-reference to that node, valid only
	// while active is true. It is an index, never a pointer, so graph
	// growth never invalidates it (DESIGN NOTES §9).
	graphNodeIndex uint32
}

// Activate marks the entry active and records its owning node index.
// Returns false if the entry was already active (caller should instead
// bump the existing node's count).
func (e *Entry) Activate(nodeIndex uint32) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active {
		return false
	}
	e.active = true
	e.graphNodeIndex = nodeIndex

	return true
}

// ActivateUnderLock atomically checks whether the entry is still
// inactive and, if so, calls newNodeIndex to construct the node and
// records the result as the entry's back-reference — all while holding
// e's lock, so no other goroutine can observe the same "inactive" state
// and race a second node into existence for this key (typegraph.Graph.Observe's
// §3 invariant: "every active embedding entry points to exactly one
// node"). newNodeIndex is only invoked when the entry is still inactive.
// Returns the node index now backing the entry and whether this call
// created it (false means the entry was already active and
// newNodeIndex was not called).
func (e *Entry) ActivateUnderLock(newNodeIndex func() uint32) (uint32, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active {
		return e.graphNodeIndex, false
	}

	idx := newNodeIndex()
	e.active = true
	e.graphNodeIndex = idx

	return idx, true
}

// NodeIndex returns the entry's current node back-reference and whether
// the entry is active.
func (e *Entry) NodeIndex() (uint32, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.graphNodeIndex, e.active
}
