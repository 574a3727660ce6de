package core_test

import (
	"errors"
	"testing"

	"github.com/lvlath/bmssp/core"
)

func TestAddVertexIsIdempotent(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex (repeat): %v", err)
	}
	if g.VertexCount() != 1 {
		t.Fatalf("VertexCount = %d, want 1", g.VertexCount())
	}
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\") = %v, want ErrEmptyVertexID", err)
	}
}

func TestAddEdgeBuildsAdjacencyAndVertices(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	if _, err := g.AddEdge("a", "b", 5); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if g.VertexCount() != 2 {
		t.Fatalf("VertexCount = %d, want 2", g.VertexCount())
	}
	neigh, err := g.Neighbors("a")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neigh) != 1 || neigh[0].To != "b" || neigh[0].Weight != 5 {
		t.Fatalf("Neighbors(a) = %+v, want one edge a->b weight 5", neigh)
	}
	if n, _ := g.Neighbors("b"); len(n) != 0 {
		t.Fatalf("Neighbors(b) = %+v, want none (directed edge)", n)
	}
}

func TestAddEdgeMirrorsUndirected(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	na, _ := g.Neighbors("a")
	nb, _ := g.Neighbors("b")
	if len(na) != 1 || len(nb) != 1 {
		t.Fatalf("expected mirrored adjacency, got a=%+v b=%+v", na, nb)
	}
}

func TestAddEdgeRejectsBadWeightOnUnweighted(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("a", "b", 3); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("AddEdge with weight on unweighted graph = %v, want ErrBadWeight", err)
	}
}

func TestAddEdgeRejectsLoopByDefault(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("a", "a", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("AddEdge(a,a) = %v, want ErrLoopNotAllowed", err)
	}
	g = core.NewGraph(core.WithLoops())
	if _, err := g.AddEdge("a", "a", 0); err != nil {
		t.Fatalf("AddEdge(a,a) with WithLoops: %v", err)
	}
}

func TestAddEdgeRejectsParallelEdgesByDefault(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("first AddEdge: %v", err)
	}
	if _, err := g.AddEdge("a", "b", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Fatalf("second AddEdge(a,b) = %v, want ErrMultiEdgeNotAllowed", err)
	}
	g = core.NewGraph(core.WithMultiEdges())
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("first AddEdge (multi): %v", err)
	}
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("second AddEdge(a,b) with WithMultiEdges: %v", err)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Fatalf("EdgeCount = %d, want 2", got)
	}
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("a", "b", 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.RemoveVertex("a"); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if g.VertexCount() != 1 {
		t.Fatalf("VertexCount = %d, want 1", g.VertexCount())
	}
	if got := g.EdgeCount(); got != 0 {
		t.Fatalf("EdgeCount = %d, want 0 after removing shared vertex", got)
	}
	if err := g.RemoveVertex("z"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("RemoveVertex(missing) = %v, want ErrVertexNotFound", err)
	}
}

func TestVerticesAndEdgesAreSorted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, pair := range [][2]string{{"c", "a"}, {"a", "b"}, {"b", "c"}} {
		if _, err := g.AddEdge(pair[0], pair[1], 0); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	vs := g.Vertices()
	for i := 1; i < len(vs); i++ {
		if vs[i-1] >= vs[i] {
			t.Fatalf("Vertices() not sorted: %v", vs)
		}
	}
	es := g.Edges()
	for i := 1; i < len(es); i++ {
		if es[i-1].ID >= es[i].ID {
			t.Fatalf("Edges() not sorted by ID: %v", es)
		}
	}
}

func TestGraphOptionFlags(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	if !g.Directed() || !g.Weighted() || !g.Multigraph() || !g.Looped() {
		t.Fatalf("flags not propagated: directed=%v weighted=%v multi=%v loops=%v",
			g.Directed(), g.Weighted(), g.Multigraph(), g.Looped())
	}
}
