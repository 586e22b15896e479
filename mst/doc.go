// Package mst builds the minimum spanning tree used by functional
// evenness (§4.J) over an already-populated distheap.Heap (§4.H).
//
// Unlike prim_kruskal's classic Prim, which scans each newly-visited
// vertex's adjacency list for unvisited neighbours, this builder never
// sees adjacency lists: every pair's distance already lives in the
// heap, so growth proceeds by repeatedly asking the heap for the
// cheapest "crossing edge" — the minimum-distance edge with exactly
// one endpoint already in the tree — via distheap.Heap.PopCrossingEdge.
// DESIGN NOTES §9 permits reimplementing that search iteratively if the
// original's recursive version risks stack pressure; it is iterative
// here from the start (see distheap.PopCrossingEdge).
package mst
