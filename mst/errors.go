package mst

import "errors"

// ErrDisconnected is returned when fewer than n-1 crossing edges can be
// found before the heap is exhausted (prim_kruskal.ErrDisconnected is
// the direct analog).
var ErrDisconnected = errors.New("mst: graph disconnected before all nodes were reached")
