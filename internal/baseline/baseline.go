// Package baseline wraps the project's general-purpose Dijkstra
// implementation as a correctness oracle for the bmssp solver: tests and
// the benchmark harness run both solvers over the same graph and compare
// distance tables instead of re-deriving expected output by hand.
package baseline

import (
	"fmt"
	"math"

	"github.com/lvlath/bmssp/bmssp"
	"github.com/lvlath/bmssp/core"
	"github.com/lvlath/bmssp/dijkstra"
)

// scale converts bmssp's float64 edge weights into the int64 weights
// dijkstra requires. Weights are multiplied by scale and rounded before
// handing them to core.Graph, and the returned distances are divided back
// down - an approximation inherent to bridging a float-weighted solver
// and an integer-weighted one, not a bug in either.
const scale = 1_000_000.0

// Solve runs the Dijkstra oracle over g from source and returns a
// distance table indexed the same way bmssp.Solver.Solve's would:
// dist[v] is the shortest distance from source to v, or math.Inf(1) if v
// is unreachable.
func Solve(g *bmssp.Graph, source int) ([]float64, error) {
	n := g.N()
	// bmssp.Graph accepts parallel edges and self-loops, so the copy must too.
	cg := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	for v := 0; v < n; v++ {
		if err := cg.AddVertex(vertexID(v)); err != nil {
			return nil, fmt.Errorf("baseline: AddVertex(%d): %w", v, err)
		}
	}
	for u := 0; u < n; u++ {
		for _, e := range g.Neighbors(u) {
			w := int64(math.Round(e.Weight * scale))
			if _, err := cg.AddEdge(vertexID(u), vertexID(e.To), w); err != nil {
				return nil, fmt.Errorf("baseline: AddEdge(%d,%d): %w", u, e.To, err)
			}
		}
	}

	dist, err := dijkstra.Dijkstra(cg, dijkstra.Source(vertexID(source)))
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}

	out := make([]float64, n)
	for v := 0; v < n; v++ {
		d, ok := dist[vertexID(v)]
		if !ok || d == math.MaxInt64 {
			out[v] = math.Inf(1)
			continue
		}
		out[v] = float64(d) / scale
	}
	return out, nil
}

func vertexID(v int) string {
	return fmt.Sprintf("v%d", v)
}
