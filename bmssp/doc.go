// Package bmssp computes single-source shortest paths on directed graphs
// with non-negative edge weights using the recursive block-batched
// algorithm of Duan, Mao, Mao, Shu & Yin, "Breaking the Sorting Barrier
// for Directed Single-Source Shortest Paths" (arXiv:2504.17033).
//
// The classic Dijkstra bound of O((V+E) log V) comes from maintaining a
// single globally comparison-sorted frontier. This package instead
// partitions the frontier into distance bands and explores each band
// through a bounded recursive call, using BatchedPriority — a bulk-access
// priority structure tuned for many cheap inserts and occasional large
// extractions — in place of a binary heap.
//
// Surface:
//
//	g := bmssp.NewGraph(n)
//	g.AddEdge(u, v, w)
//	s := bmssp.NewSolver(g, source)
//	dist := s.Solve()
//
// The solver is single-threaded and deterministic: identical graphs
// (same vertex numbering, same adjacency order) and the same source
// always produce bit-identical distance, predecessor, and path-length
// tables, because every tie among equal-distance candidates is broken by
// the fixed (distance, path length, vertex id) lexicographic order.
//
// Negative weights, dynamic edge mutation after Solve begins, and
// multi-source queries are out of scope; see the package-level tests for
// the exact contract.
package bmssp
