package typegraph

import (
	"sync"

	"github.com/lingometrics/diversutils/embedding"
)

// initialCapacity is the graph's starting node-slice capacity (§4.E:
// "Empty graph starts with capacity 32").
const initialCapacity = 32

// Graph is a contiguous, growable sequence of Nodes backed by an
// embedding.Index. Graph.mu is the single "nodes-mutex" serialising
// capacity growth and gating ComputeRelativeProportions (§5).
type Graph struct {
	mu    sync.Mutex
	index *embedding.Index
	nodes []*Node
}

// New constructs an empty Graph over the given embedding index.
func New(index *embedding.Index) *Graph {
	return &Graph{
		index: index,
		nodes: make([]*Node, 0, initialCapacity),
	}
}

// Observe processes one token occurrence of key (§4.E):
//   - if the embedding index has key, either create a new node (first
//     sighting) or bump the existing node's count;
//   - otherwise the embedding index itself records the miss in its
//     discarded-keys diagnostics array (§4.D), and Observe is a no-op.
func (g *Graph) Observe(key string) {
	i, ok := g.index.KeyToIndex(key)
	if !ok {
		return
	}
	entry := g.index.Entry(i)

	// Fast path: already active, just bump under the node's own mutex.
	if nodeIdx, active := entry.NodeIndex(); active {
		g.mu.Lock()
		node := g.nodes[nodeIdx]
		g.mu.Unlock()
		node.bump()

		return
	}

	// Slow path: first sighting of this type, maybe. The node is only
	// ever appended from inside ActivateUnderLock's callback, which runs
	// under the entry's own lock after rechecking the active flag — so
	// two concurrent first-sightings of the same key can never both
	// append a node; the loser sees active=true and bumps the winner's
	// node instead of leaking an unreferenced one into g.nodes.
	nodeIdx, created := entry.ActivateUnderLock(func() uint32 {
		g.mu.Lock()
		node := &Node{
			EntryIndex:         i,
			Key:                key,
			NumDimensions:      uint16(g.index.Dim()),
			absoluteProportion: 1,
			relativeProportion: 1.0,
		}
		g.nodes = append(g.nodes, node)
		newIdx := uint32(len(g.nodes) - 1)
		g.mu.Unlock()

		return newIdx
	})
	if !created {
		g.mu.Lock()
		node := g.nodes[nodeIdx]
		g.mu.Unlock()
		node.bump()
	}
}

// NumNodes returns the current node count under the nodes-mutex.
func (g *Graph) NumNodes() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.nodes)
}

// Lock acquires the nodes-mutex. Callers computing a checkpoint must
// hold it across ComputeRelativeProportions and any subsequent read of
// Nodes/Vector so that the snapshot is internally consistent (§5).
func (g *Graph) Lock() { g.mu.Lock() }

// Unlock releases the nodes-mutex.
func (g *Graph) Unlock() { g.mu.Unlock() }

// ComputeRelativeProportions sets every node's relative proportion to
// absolute/Σabsolute (§4.E). The caller must hold g's nodes-mutex (via
// Lock/Unlock) for the duration of the checkpoint this feeds into — that
// serialises against node creation, but per-node bump() still only takes
// the node's own lock (§5's "per-node lock + graph-global nodes lock"),
// so a file-reader worker may still be incrementing a node concurrently
// with a checkpoint. To keep Σ relative == 1 exactly despite that,
// absolute is read into a snapshot in a single locked pass and that same
// snapshot value, not a second live read, feeds both the total and each
// node's relative proportion.
func (g *Graph) ComputeRelativeProportions() {
	snapshot := make([]uint64, len(g.nodes))
	var total uint64
	for i, n := range g.nodes {
		snapshot[i] = n.Absolute()
		total += snapshot[i]
	}
	if total == 0 {
		return
	}
	for i, n := range g.nodes {
		n.setRelative(float64(snapshot[i]) / float64(total))
	}
}

// Proportions returns a snapshot of every node's relative proportion,
// in node-index order. The caller should hold the nodes-mutex (via
// Lock/Unlock) to guarantee this reflects the most recent
// ComputeRelativeProportions call without interleaved growth.
func (g *Graph) Proportions() []float64 {
	out := make([]float64, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Relative()
	}

	return out
}

// Absolutes returns a snapshot of every node's absolute proportion, in
// node-index order.
func (g *Graph) Absolutes() []uint64 {
	out := make([]uint64, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Absolute()
	}

	return out
}

// Vector returns the embedding vector backing node i.
func (g *Graph) Vector(i int) []float32 {
	return g.index.Entry(g.nodes[i].EntryIndex).Vector
}

// Vectors returns every node's embedding vector, in node-index order.
func (g *Graph) Vectors() [][]float32 {
	out := make([][]float32, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.Vector(i)
	}

	return out
}

// Keys returns every node's surface key, in node-index order.
func (g *Graph) Keys() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Key
	}

	return out
}

// Node returns the node at index i directly, for callers that already
// hold the nodes-mutex and want to avoid snapshot-copy overhead.
func (g *Graph) Node(i int) *Node { return g.nodes[i] }

// Index returns the backing embedding index.
func (g *Graph) Index() *embedding.Index { return g.index }
