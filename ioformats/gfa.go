package ioformats

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/poasta-go/poasta/poagraph"
	"github.com/poasta-go/poasta/refgraph"
)

// SegmentNamer maps a graph node to its GFA/GAF segment name.
type SegmentNamer func(refgraph.NodeID) string

// DefaultSegmentName names node n "s<n>", matching the segment naming the
// GFA and GAF writers share.
func DefaultSegmentName(n refgraph.NodeID) string {
	return fmt.Sprintf("s%d", n)
}

// WriteGFA renders g as GFA v1.1: one S record per non-sentinel node (a
// single-symbol segment) and one L record per edge between non-sentinel
// nodes, with 0M overlaps.
func WriteGFA(w io.Writer, g *poagraph.Graph) error {
	return WriteGFANamed(w, g, DefaultSegmentName)
}

// WriteGFANamed is WriteGFA with a custom segment namer.
func WriteGFANamed(w io.Writer, g *poagraph.Graph, name SegmentNamer) error {
	bw := bufio.NewWriter(w)
	start, end := g.StartNode(), g.EndNode()

	if _, err := fmt.Fprintln(bw, "H\tVN:Z:1.1"); err != nil {
		return err
	}

	for _, n := range g.AllNodes() {
		if n == start || n == end {
			continue
		}
		if _, err := fmt.Fprintf(bw, "S\t%s\t%c\n", name(n), g.GetSymbolChar(n)); err != nil {
			return err
		}
	}

	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	for _, e := range edges {
		if e.From == start || e.From == end || e.To == start || e.To == end {
			continue
		}
		if _, err := fmt.Fprintf(bw, "L\t%s\t+\t%s\t+\t0M\n", name(e.From), name(e.To)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
