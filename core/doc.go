// Package core provides the small, thread-safe in-memory Graph used to
// build the string-keyed fixture graphs that feed the builder package's
// topology constructors and the dijkstra oracle.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", ...)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// It is deliberately narrow - just enough graph to generate and traverse
// benchmark/test fixtures, not a general-purpose graph library.
//
// Methods:
//
//	AddVertex(id string) error                       // O(1)
//	HasVertex(id string) bool                         // O(1)
//	RemoveVertex(id string) error                     // O(deg(v)+E)
//	AddEdge(from,to string, weight int64) (string, error) // O(1) amortized
//	Neighbors(id string) ([]*Edge, error)              // O(d log d)
//	Vertices() []string                                // O(V log V)
//	Edges() []*Edge                                    // O(E log E)
//	VertexCount() int                                  // O(1)
//	EdgeCount() int                                    // O(1)
//	Directed() bool, Weighted() bool, Looped() bool, Multigraph() bool
//
// Errors:
//
//	ErrEmptyVertexID       - zero-length vertex ID
//	ErrVertexNotFound      - missing vertex
//	ErrBadWeight           - non-zero weight on unweighted graph
//	ErrLoopNotAllowed      - self-loop when loops disabled
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges disabled
package core
