package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lvlath/bmssp/core"
	"github.com/lvlath/bmssp/dijkstra"
)

func buildGraph(t *testing.T, edges [][3]interface{}) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range edges {
		from, to, w := e[0].(string), e[1].(string), int64(e[2].(int))
		if _, err := g.AddEdge(from, to, w); err != nil {
			t.Fatalf("AddEdge(%s,%s,%d): %v", from, to, w, err)
		}
	}
	return g
}

func TestDijkstraShortestDistances(t *testing.T) {
	g := buildGraph(t, [][3]interface{}{
		{"A", "B", 1},
		{"B", "C", 2},
		{"A", "C", 5},
	})
	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	want := map[string]int64{"A": 0, "B": 1, "C": 3}
	for v, d := range want {
		if dist[v] != d {
			t.Errorf("dist[%s] = %d, want %d", v, dist[v], d)
		}
	}
}

func TestDijkstraUnreachableVertexIsMaxInt64(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("B"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	if dist["B"] != math.MaxInt64 {
		t.Errorf("dist[B] = %d, want MaxInt64 (unreachable)", dist["B"])
	}
}

func TestDijkstraValidation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}

	if _, err := dijkstra.Dijkstra(g); !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Errorf("no Source() option: got %v, want ErrEmptySource", err)
	}
	if _, err := dijkstra.Dijkstra(nil, dijkstra.Source("A")); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Errorf("nil graph: got %v, want ErrNilGraph", err)
	}
	unweighted := core.NewGraph(core.WithDirected(true))
	if err := unweighted.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, err := dijkstra.Dijkstra(unweighted, dijkstra.Source("A")); !errors.Is(err, dijkstra.ErrUnweightedGraph) {
		t.Errorf("unweighted graph: got %v, want ErrUnweightedGraph", err)
	}
	if _, err := dijkstra.Dijkstra(g, dijkstra.Source("missing")); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Errorf("missing source: got %v, want ErrVertexNotFound", err)
	}
}

func TestDijkstraRejectsNegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if _, err := g.AddEdge("A", "B", -1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := dijkstra.Dijkstra(g, dijkstra.Source("A")); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Errorf("negative weight: got %v, want ErrNegativeWeight", err)
	}
}

func TestDijkstraUndirectedGraphRelaxesBothWays(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	if _, err := g.AddEdge("A", "B", 4); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	if dist["A"] != 4 {
		t.Errorf("dist[A] from B = %d, want 4", dist["A"])
	}
}
