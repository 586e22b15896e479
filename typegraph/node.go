package typegraph

import "sync"

// Node is one active type in the graph: a back-reference to its
// embedding entry, its absolute/relative proportions, and the embedding
// dimensionality it was created with.
type Node struct {
	mu sync.Mutex

	// EntryIndex is the back-reference into the owning Graph's
	// embedding.Index, by slot index (never by pointer).
	EntryIndex int
	// Key is the surface form this node represents, kept for
	// diagnostics without an extra embedding-index round trip.
	Key string

	// NumDimensions is the embedding dimensionality recorded at node
	// creation time (reserved per §3; all nodes in a run share one
	// embedding index, so this is constant, but the field exists to
	// match the spec's data model).
	NumDimensions uint16

	absoluteProportion uint64
	relativeProportion float64
}

// Absolute returns the node's current absolute proportion (occurrence
// count).
func (n *Node) Absolute() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.absoluteProportion
}

// Relative returns the node's relative proportion as of the last
// ComputeRelativeProportions call.
func (n *Node) Relative() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.relativeProportion
}

// bump increments the node's absolute proportion by one, under the
// node's own mutex (§4.E: "increment the node's absolute proportion
// under the node's mutex").
func (n *Node) bump() {
	n.mu.Lock()
	n.absoluteProportion++
	n.mu.Unlock()
}

func (n *Node) setRelative(r float64) {
	n.mu.Lock()
	n.relativeProportion = r
	n.mu.Unlock()
}
