package align

import (
	"strings"

	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/score"
	"github.com/poasta-go/poasta/visited"
)

// AlignedPair is one alignment column: a reference node and/or a query
// position. Both present encodes a match or mismatch, query only an
// insertion, reference only a deletion.
type AlignedPair struct {
	Ref      refgraph.NodeID
	HasRef   bool
	Query    int
	HasQuery bool
}

// IsAligned reports whether the pair is a match/mismatch column.
func (p AlignedPair) IsAligned() bool { return p.HasRef && p.HasQuery }

// IsInsertion reports whether the pair consumes query only.
func (p AlignedPair) IsInsertion() bool { return !p.HasRef && p.HasQuery }

// IsDeletion reports whether the pair consumes reference only.
func (p AlignedPair) IsDeletion() bool { return p.HasRef && !p.HasQuery }

// Alignment is the ordered column list produced by one query alignment.
type Alignment []AlignedPair

// FromSteps converts a backtrace into an Alignment.
func FromSteps(steps []visited.Step) Alignment {
	out := make(Alignment, len(steps))
	for i, st := range steps {
		out[i] = AlignedPair{
			Ref:      st.RefNode,
			HasRef:   st.HasRef,
			Query:    st.QueryPos,
			HasQuery: st.HasQuery,
		}
	}
	return out
}

// Pretty renders the alignment as three ASCII rows — reference symbols,
// column markers, query symbols — for CLI output and eyeball checks:
//
//	ACG-T
//	||  .
//	AC-CA
//
// '|' marks a match, '.' a substitution, and a space an indel column.
func (a Alignment) Pretty(g refgraph.Graph, query []byte) string {
	var ref, mark, qry strings.Builder
	for _, p := range a {
		switch {
		case p.IsAligned():
			rs := g.GetSymbolChar(p.Ref)
			qs := query[p.Query]
			ref.WriteByte(rs)
			qry.WriteByte(qs)
			if rs == qs {
				mark.WriteByte('|')
			} else {
				mark.WriteByte('.')
			}
		case p.IsInsertion():
			ref.WriteByte('-')
			mark.WriteByte(' ')
			qry.WriteByte(query[p.Query])
		case p.IsDeletion():
			ref.WriteByte(g.GetSymbolChar(p.Ref))
			mark.WriteByte(' ')
			qry.WriteByte('-')
		}
	}
	return ref.String() + "\n" + mark.String() + "\n" + qry.String() + "\n"
}

// ScoreOf recomputes the alignment's cost by summing state-transition
// penalties along the columns: substitutions at the model's mismatch
// penalty, each maximal gap run at the cheapest applicable gap piece. The
// result must equal the A* FinalScore for any alignment the search
// returns.
func (a Alignment) ScoreOf(g refgraph.Graph, query []byte, model score.Model) uint64 {
	var total uint64
	runLen := 0
	flush := func() {
		if runLen == 0 {
			return
		}
		best := uint64(0)
		for i, p := range model.GapPieces() {
			c := p.Open + uint64(runLen)*p.Extend
			if i == 0 || c < best {
				best = c
			}
		}
		total += best
		runLen = 0
	}

	prevGap := AlignedPair{}
	for _, p := range a {
		if p.IsAligned() {
			flush()
			total += model.MatchMismatch(g.GetSymbolChar(p.Ref), query[p.Query])
			continue
		}
		// A direct switch between an insertion run and a deletion run
		// closes the first gap and opens the second.
		if runLen > 0 && p.IsInsertion() != prevGap.IsInsertion() {
			flush()
		}
		runLen++
		prevGap = p
	}
	flush()
	return total
}
