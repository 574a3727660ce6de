package bmssp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvlath/bmssp/bmssp"
	"github.com/lvlath/bmssp/internal/baseline"
)

// randomGraph builds a directed graph with n vertices and roughly n*avgDeg
// edges, weights drawn from [1, maxWeight], deterministic for a given seed.
func randomGraph(n, avgDeg int, maxWeight float64, seed int64) *bmssp.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := bmssp.NewGraph(n)
	for u := 0; u < n; u++ {
		for k := 0; k < avgDeg; k++ {
			v := rng.Intn(n)
			if v == u {
				continue
			}
			w := 1 + rng.Float64()*(maxWeight-1)
			g.AddEdge(u, v, w)
		}
	}
	return g
}

// TestSolverAgreesWithOracleOnRandomGraphs checks property 2 (shortest-path
// correctness) from the solver's testable-properties contract: across many
// random directed graphs, every finite distance bmssp.Solver reports must
// match the Dijkstra oracle within the contract's 1e-6 tolerance, and the
// two must agree on exactly which vertices are unreachable.
func TestSolverAgreesWithOracleOnRandomGraphs(t *testing.T) {
	require := require.New(t)

	sizes := []int{1, 2, 5, 17, 50, 137}
	for _, n := range sizes {
		for trial := 0; trial < 5; trial++ {
			seed := int64(n)*1000 + int64(trial)
			g := randomGraph(n, 3, 20, seed)

			got := bmssp.NewSolver(g, 0).Solve()
			want, err := baseline.Solve(g, 0)
			require.NoError(err, "n=%d seed=%d", n, seed)
			require.Len(got, n)

			for v := 0; v < n; v++ {
				if math.IsInf(want[v], 1) {
					require.Truef(math.IsInf(got[v], 1), "n=%d seed=%d vertex=%d: oracle unreachable, solver got %v", n, seed, v, got[v])
					continue
				}
				require.Falsef(math.IsInf(got[v], 1), "n=%d seed=%d vertex=%d: oracle reachable at %v, solver says unreachable", n, seed, v, want[v])
				require.InDeltaf(want[v], got[v], 1e-6, "n=%d seed=%d vertex=%d", n, seed, v)
			}
		}
	}
}

// TestSolverSatisfiesTriangleInequalityOnRandomGraphs checks property 3: for
// every edge (u->v, w) where dist[u] is finite, dist[v] <= dist[u] + w + 1e-9.
func TestSolverSatisfiesTriangleInequalityOnRandomGraphs(t *testing.T) {
	require := require.New(t)

	for trial := 0; trial < 10; trial++ {
		n := 80
		seed := int64(9000 + trial)
		g := randomGraph(n, 4, 15, seed)
		sv := bmssp.NewSolver(g, 0)
		dist := sv.Solve()

		for u := 0; u < n; u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, e := range g.Neighbors(u) {
				require.LessOrEqualf(dist[e.To], dist[u]+e.Weight+1e-9,
					"seed=%d edge %d->%d (w=%v): dist[%d]=%v dist[%d]=%v", seed, u, e.To, e.Weight, u, dist[u], e.To, dist[e.To])
			}
		}
	}
}

// TestSolverPredecessorConsistencyOnRandomGraphs checks property 6: for
// every non-source, non-root vertex v, there exists an edge
// (pred[v] -> v, w) with |dist[v] - (dist[pred[v]] + w)| <= 1e-9.
func TestSolverPredecessorConsistencyOnRandomGraphs(t *testing.T) {
	require := require.New(t)

	n := 80
	g := randomGraph(n, 4, 15, 4242)
	sv := bmssp.NewSolver(g, 0)
	dist := sv.Solve()

	for v := 0; v < n; v++ {
		p := sv.Pred(v)
		if p == -1 {
			continue
		}
		found := false
		for _, e := range g.Neighbors(p) {
			if e.To != v {
				continue
			}
			if math.Abs(dist[v]-(dist[p]+e.Weight)) <= 1e-9 {
				found = true
				break
			}
		}
		require.Truef(found, "vertex %d: no edge %d->%d reconciles dist %v with pred dist %v", v, p, v, dist[v], dist[p])
	}
}
