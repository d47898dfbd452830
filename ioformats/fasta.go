package ioformats

import (
	"io"
	"sort"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/poasta-go/poasta/poagraph"
	"github.com/poasta-go/poasta/refgraph"
)

// MSAColumns assigns every non-sentinel node its MSA column: nodes are
// scanned in topological order and each aligned-equivalence class claims
// the next free column at its first member, so all members of one class
// share a column. Returns the column map (indexed by NodeID, -1 for
// sentinels) and the column count.
func MSAColumns(g *poagraph.Graph) ([]int, int) {
	order := g.GetNodeOrdering()
	start, end := g.StartNode(), g.EndNode()

	nodes := make([]refgraph.NodeID, 0, g.NodeCount())
	for _, n := range g.AllNodes() {
		if n == start || n == end {
			continue
		}
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return order[nodes[i]] < order[nodes[j]] })

	cols := make([]int, g.NodeCountWithStartAndEnd())
	for i := range cols {
		cols[i] = -1
	}
	next := 0
	for _, n := range nodes {
		if cols[n] != -1 {
			continue
		}
		for _, member := range g.AlignedNodes(n) {
			cols[member] = next
		}
		next++
	}
	return cols, next
}

// SequencePath walks the i-th absorbed sequence's node chain through g by
// following the edges tagged with its sequence ID.
func SequencePath(g *poagraph.Graph, seqID uint32, startNode refgraph.NodeID) []refgraph.NodeID {
	var path []refgraph.NodeID
	end := g.EndNode()
	cur := startNode
	for cur != end {
		path = append(path, cur)
		next := end
		for _, s := range g.Successors(cur) {
			e, ok := g.Edge(cur, s)
			if ok && edgeHasSeq(e, seqID) {
				next = s
				break
			}
		}
		if next == end {
			break
		}
		cur = next
	}
	return path
}

func edgeHasSeq(e *poagraph.Edge, seqID uint32) bool {
	ids := e.SeqIDs
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= seqID })
	return i < len(ids) && ids[i] == seqID
}

// WriteFastaMSA renders the multiple sequence alignment the graph
// encodes: one gapped FASTA record per absorbed sequence, '-' in every
// column the sequence skips.
func WriteFastaMSA(w io.Writer, g *poagraph.Graph) error {
	cols, n := MSAColumns(g)
	fw := fasta.NewWriter(w, 80)

	for i, rec := range g.Sequences() {
		row := make([]byte, n)
		for c := range row {
			row[c] = '-'
		}
		for _, node := range SequencePath(g, uint32(i), rec.StartNode) {
			row[cols[node]] = g.GetSymbolChar(node)
		}
		s := linear.NewSeq(rec.Name, alphabet.BytesToLetters(row), alphabet.DNAgapped)
		if _, err := fw.Write(s); err != nil {
			return err
		}
	}
	return nil
}
