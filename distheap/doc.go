// Package distheap implements the min-heap over the ½·n·(n-1) pairwise
// node distances that the MST builder (package mst) repeatedly queries
// via PopCrossingEdge for the cheapest crossing edge (§4.G).
//
// Unlike container/heap, Pop here is lazy: it flags a slot dead instead
// of compacting the backing array, then slides the hole downward by
// repeatedly swapping it with the smaller of its two usable children
// (DESIGN NOTES §9: "the heap's 'lazy pop' pattern ... maps cleanly to a
// tagged-variant slot {Live(edge) | Dead}"). This keeps the heap
// property over usable=true entries without ever shifting the whole
// array, at the cost of dead slots staying allocated for the heap's
// lifetime — acceptable because one heap is built and discarded per
// checkpoint (§3).
package distheap
