package merge

import (
	"fmt"

	"github.com/poasta-go/poasta/align"
	"github.com/poasta-go/poasta/poagraph"
	"github.com/poasta-go/poasta/refgraph"
)

// AddAlignment folds one aligned query into g with unit per-base weights.
// A nil alignment means the sequence was never aligned (the first query
// into an empty graph); it is laid down as a fresh linear chain.
func AddAlignment(g *poagraph.Graph, name string, seq []byte, aln align.Alignment) (uint32, error) {
	return AddAlignmentWithWeights(g, name, seq, aln, nil)
}

// AddAlignmentWithWeights is AddAlignment with explicit per-base weights,
// summed into the weights of the edges the sequence traverses. Weights
// feed emission statistics in debug output only; they never influence
// alignment.
//
// The returned sequence ID identifies the query on every edge it crossed.
func AddAlignmentWithWeights(g *poagraph.Graph, name string, seq []byte, aln align.Alignment, weights []float64) (uint32, error) {
	if name == "" {
		return 0, poagraph.ErrEmptyName
	}
	if len(seq) == 0 {
		return 0, fmt.Errorf("%w: %q", poagraph.ErrEmptySequence, name)
	}
	if weights == nil {
		weights = make([]float64, len(seq))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(seq) {
		return 0, poagraph.ErrWeightsLengthMismatch
	}
	if err := validateNodes(g, aln); err != nil {
		return 0, err
	}

	snap := g.TakeSnapshot()
	seqID := g.NextSeqID()

	m := &merger{g: g, seq: seq, weights: weights, seqID: seqID, pred: g.StartNode()}

	var err error
	if aln == nil {
		m.insertRun(0, len(seq))
	} else {
		err = m.walk(aln)
	}
	if err != nil {
		g.Restore(snap)
		return 0, err
	}

	m.connect(m.pred, g.EndNode(), 0)
	g.AddSequenceRecord(poagraph.SequenceRecord{Name: name, StartNode: m.first})
	g.RecomputeTopoOrder()
	return seqID, nil
}

// validateNodes rejects alignments referencing node handles outside g
// before any mutation happens, so rollback is never needed for this class
// of error.
func validateNodes(g *poagraph.Graph, aln align.Alignment) error {
	limit := refgraph.NodeID(g.NodeCountWithStartAndEnd())
	for _, p := range aln {
		if !p.HasRef {
			continue
		}
		if p.Ref < 0 || p.Ref >= limit || p.Ref == g.StartNode() || p.Ref == g.EndNode() {
			return fmt.Errorf("%w: node %d", poagraph.ErrNodeNotInGraph, p.Ref)
		}
	}
	return nil
}

type merger struct {
	g       *poagraph.Graph
	seq     []byte
	weights []float64
	seqID   uint32

	pred     refgraph.NodeID
	first    refgraph.NodeID
	haveNode bool
	nextQ    int
}

func (m *merger) connect(from, to refgraph.NodeID, weight float64) {
	m.g.Connect(from, to, m.seqID, weight)
}

// advance moves the running predecessor onto node, recording the chain's
// first node for the sequence record.
func (m *merger) advance(node refgraph.NodeID, qpos int) {
	m.connect(m.pred, node, m.weights[qpos])
	m.pred = node
	if !m.haveNode {
		m.first = node
		m.haveNode = true
	}
}

// insertRun lays down fresh nodes for query positions [from, to) — used
// for the unaligned-chain case and for query bytes an ends-free alignment
// left uncovered.
func (m *merger) insertRun(from, to int) {
	for q := from; q < to; q++ {
		n := m.g.AddNode(m.seq[q])
		m.advance(n, q)
	}
	if to > m.nextQ {
		m.nextQ = to
	}
}

func (m *merger) walk(aln align.Alignment) error {
	for _, p := range aln {
		if p.HasQuery && p.Query > m.nextQ {
			// Query bytes the alignment skipped (ends-free prefix).
			m.insertRun(m.nextQ, p.Query)
		}
		switch {
		case p.IsAligned():
			if err := m.alignedColumn(p); err != nil {
				return err
			}
			m.nextQ = p.Query + 1
		case p.IsInsertion():
			n := m.g.AddNode(m.seq[p.Query])
			m.advance(n, p.Query)
			m.nextQ = p.Query + 1
		case p.IsDeletion():
			// The sequence skips this node; the graph is untouched.
		}
	}
	// Query bytes past the last aligned column (ends-free suffix).
	m.insertRun(m.nextQ, len(m.seq))
	return nil
}

// alignedColumn resolves a match/mismatch pair: reuse the aligned node
// when symbols agree, otherwise reuse a same-symbol member of its MSA
// column, otherwise allocate a substitution node into that column.
func (m *merger) alignedColumn(p align.AlignedPair) error {
	b := m.seq[p.Query]
	node := p.Ref

	if m.g.Symbol(node) != b {
		if reused, ok := m.sameColumnNode(node, b); ok {
			node = reused
		} else {
			if m.g.SilentSubstitutionForbidden() {
				return fmt.Errorf("%w: node %d carries %q, query has %q",
					poagraph.ErrSymbolMismatch, p.Ref, m.g.Symbol(p.Ref), b)
			}
			node = m.g.AddNode(b)
			m.g.JoinClass(p.Ref, node)
		}
	}

	m.advance(node, p.Query)
	return nil
}

// sameColumnNode looks for an existing member of node's aligned class
// already carrying symbol b.
func (m *merger) sameColumnNode(node refgraph.NodeID, b byte) (refgraph.NodeID, bool) {
	for _, member := range m.g.AlignedNodes(node) {
		if member != node && m.g.Symbol(member) == b {
			return member, true
		}
	}
	return 0, false
}
