package mst

import (
	"github.com/lingometrics/diversutils/distheap"
)

// MST is a fixed-length list of n-1 edges plus a parallel list of the n
// node indices reached so far (§3: "a fixed-length list of n-1 edges
// plus a parallel list of n node references"). NumActiveNodes and
// NumActiveEdges grow monotonically during Build and equal n and n-1,
// respectively, on success.
type MST struct {
	Edges          []distheap.Edge
	Nodes          []int
	NumActiveNodes int
	NumActiveEdges int
}

// Build grows an MST over n nodes by repeatedly popping the cheapest
// crossing edge from heap (§4.H):
//  1. pop the global minimum and mark both endpoints already_considered;
//  2. while fewer than n nodes are considered, pop the minimum-distance
//     edge with exactly one endpoint already_considered, add it, and
//     mark the new endpoint considered;
//  3. stop when num_active_nodes == n.
//
// Among equal-distance crossing edges, the one taken is the first that
// distheap.Heap.PopCrossingEdge's search meets; this is not necessarily
// the earliest inserted pair. Returns ErrDisconnected if the heap is
// exhausted before every node is reached.
func Build(n int, heap *distheap.Heap) (*MST, error) {
	if n <= 1 {
		return &MST{Edges: []distheap.Edge{}, Nodes: nodesUpTo(n), NumActiveNodes: n}, nil
	}

	first, ok := heap.PopMin()
	if !ok {
		return nil, ErrDisconnected
	}

	considered := make(map[int]bool, n)
	considered[first.A] = true
	considered[first.B] = true

	edges := make([]distheap.Edge, 0, n-1)
	edges = append(edges, first)
	nodes := []int{first.A, first.B}

	for len(nodes) < n {
		edge, ok := heap.PopCrossingEdge(func(node int) bool { return considered[node] })
		if !ok {
			return nil, ErrDisconnected
		}

		newNode := edge.A
		if considered[edge.A] {
			newNode = edge.B
		}
		considered[newNode] = true
		nodes = append(nodes, newNode)
		edges = append(edges, edge)
	}

	return &MST{
		Edges:          edges,
		Nodes:          nodes,
		NumActiveNodes: len(nodes),
		NumActiveEdges: len(edges),
	}, nil
}

// TotalWeight sums the distance of every edge in the tree.
func (m *MST) TotalWeight() float64 {
	var total float64
	for _, e := range m.Edges {
		total += e.Dist
	}

	return total
}

func nodesUpTo(n int) []int {
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}

	return nodes
}
