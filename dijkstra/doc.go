// Package dijkstra provides a min-heap implementation of Dijkstra's
// shortest-path algorithm on weighted graphs with non-negative edge
// weights, used as the reference oracle the property tests check the
// bmssp solver against.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, err error)
//
//	  - g:    pointer to a core.Graph that must be weighted.
//	  - opts: Source(string), required, the starting vertex ID.
//	  - dist: map[v] = minimal distance from Source to v, or math.MaxInt64 if unreachable.
//	  - err:  one of ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//	          ErrNegativeWeight, or nil on success.
//
// Dijkstra itself is not safe for concurrent use against the same
// *core.Graph if that graph is being modified concurrently.
package dijkstra
