package refgraph_test

import (
	"testing"

	"github.com/poasta-go/poasta/refgraph"
)

func TestLinearMockShape(t *testing.T) {
	g := refgraph.LinearMock("ACG")

	if got := g.NodeCount(); got != 3 {
		t.Fatalf("NodeCount = %d, want 3", got)
	}
	if got := g.NodeCountWithStartAndEnd(); got != 5 {
		t.Fatalf("NodeCountWithStartAndEnd = %d, want 5", got)
	}
	if got := g.EdgeCount(); got != 4 {
		t.Fatalf("EdgeCount = %d, want 4", got)
	}
	if g.InDegree(g.StartNode()) != 0 || g.OutDegree(g.EndNode()) != 0 {
		t.Fatal("sentinels must be source and sink")
	}
	if !g.IsEnd(g.EndNode()) || g.IsEnd(g.StartNode()) {
		t.Fatal("IsEnd misidentifies sentinels")
	}
}

func TestMockSymbols(t *testing.T) {
	g := refgraph.LinearMock("AC")
	a := g.Successors(g.StartNode())[0]

	if !g.IsSymbolEqual(a, 'A') {
		t.Error("IsSymbolEqual(a, 'A') = false, want true")
	}
	if g.IsSymbolEqual(a, 'C') {
		t.Error("IsSymbolEqual(a, 'C') = true, want false")
	}
	if g.IsSymbolEqual(g.StartNode(), 'A') {
		t.Error("sentinel compared equal to a symbol")
	}
	if got := g.GetSymbolChar(g.EndNode()); got != '-' {
		t.Errorf("GetSymbolChar(END) = %c, want '-'", got)
	}
}

func TestMockTopologicalOrdering(t *testing.T) {
	g := refgraph.LinearMock("ACG")
	order := g.GetNodeOrdering()

	prev := g.StartNode()
	for _, n := range g.Successors(prev) {
		if order[prev] >= order[n] {
			t.Fatalf("order[%d] = %d not before order[%d] = %d", prev, order[prev], n, order[n])
		}
	}
	if order[g.StartNode()] != 0 {
		t.Errorf("START rank = %d, want 0", order[g.StartNode()])
	}
	if order[g.EndNode()] != g.NodeCountWithStartAndEnd()-1 {
		t.Errorf("END rank = %d, want last", order[g.EndNode()])
	}
}
