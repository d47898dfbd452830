package ioformats

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/poasta-go/poasta/poagraph"
	"github.com/poasta-go/poasta/refgraph"
)

// WriteDOT renders g in Graphviz DOT: one `<rank> [label="<symbol>"]`
// line per non-sentinel node and one `<u> -> <v>` line per edge between
// non-sentinel nodes, ranks taken from the topological order. Sentinels
// are omitted.
func WriteDOT(w io.Writer, g *poagraph.Graph) error {
	bw := bufio.NewWriter(w)
	order := g.GetNodeOrdering()
	start, end := g.StartNode(), g.EndNode()

	if _, err := fmt.Fprintln(bw, "digraph {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(bw, "rankdir=\"LR\""); err != nil {
		return err
	}

	nodes := make([]refgraph.NodeID, 0, g.NodeCount())
	for _, n := range g.AllNodes() {
		if n == start || n == end {
			continue
		}
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return order[nodes[i]] < order[nodes[j]] })
	for _, n := range nodes {
		if _, err := fmt.Fprintf(bw, "%d [label=\"%c\"]\n", order[n], g.GetSymbolChar(n)); err != nil {
			return err
		}
	}

	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if order[edges[i].From] != order[edges[j].From] {
			return order[edges[i].From] < order[edges[j].From]
		}
		return order[edges[i].To] < order[edges[j].To]
	})
	for _, e := range edges {
		if e.From == start || e.From == end || e.To == start || e.To == end {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d -> %d\n", order[e.From], order[e.To]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(bw, "}"); err != nil {
		return err
	}
	return bw.Flush()
}
