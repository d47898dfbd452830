package score

import "fmt"

// GapPiece is one (open, extend) penalty pair of an affine gap model.
// A plain affine model has exactly one piece; a two-piece (convex) model
// has two, each tracked by its own Insertion/Deletion gap state in the
// search (visited.Insertion2/Deletion2), so every gap run is priced
// entirely by the piece it was opened with.
type GapPiece struct {
	// Open is charged once when transitioning from Match into a gap state.
	Open uint64

	// Extend is charged for every additional base consumed while the gap
	// state persists, and for the first base of a newly opened gap: a run
	// of k gapped bases costs Open + k*Extend.
	Extend uint64
}

// Model is the scoring contract the alignment core consumes; Affine and
// TwoPieceAffine are its two variants.
type Model interface {
	// MatchMismatch returns the cost of aligning graph symbol a to query
	// symbol b: 0 if they are equal, the mismatch penalty otherwise.
	MatchMismatch(a, b byte) uint64

	// GapPieces returns the one or two (open, extend) penalty pairs to
	// try when opening or extending an Insertion/Deletion run.
	GapPieces() []GapPiece
}

// Affine is a single-piece affine gap model: match=0, fixed mismatch,
// fixed gap-open and gap-extend penalties.
type Affine struct {
	Mismatch   uint64
	GapOpen    uint64
	GapExtend  uint64
}

var _ Model = Affine{}

// NewAffine validates and constructs an Affine model. A zero mismatch or
// gap-extend penalty would make distinct alignments cost-indistinguishable,
// so both must be positive.
func NewAffine(mismatch, gapOpen, gapExtend uint64) (Affine, error) {
	if mismatch == 0 || gapExtend == 0 {
		return Affine{}, fmt.Errorf("%w: mismatch and gap-extend penalties must be positive", ErrInvalidInput)
	}
	return Affine{Mismatch: mismatch, GapOpen: gapOpen, GapExtend: gapExtend}, nil
}

// MatchMismatch implements Model.
func (a Affine) MatchMismatch(x, y byte) uint64 {
	if x == y {
		return 0
	}
	return a.Mismatch
}

// GapPieces implements Model.
func (a Affine) GapPieces() []GapPiece {
	return []GapPiece{{Open: a.GapOpen, Extend: a.GapExtend}}
}

// TwoPieceAffine is a convex gap model with a cheap short-gap piece and a
// cheaper-per-base long-gap piece.
type TwoPieceAffine struct {
	Mismatch              uint64
	GapOpen, GapExtend    uint64
	GapOpen2, GapExtend2  uint64
}

var _ Model = TwoPieceAffine{}

// NewTwoPieceAffine validates and constructs a TwoPieceAffine model.
func NewTwoPieceAffine(mismatch, gapOpen, gapExtend, gapOpen2, gapExtend2 uint64) (TwoPieceAffine, error) {
	if mismatch == 0 || gapExtend == 0 || gapExtend2 == 0 {
		return TwoPieceAffine{}, fmt.Errorf("%w: mismatch and gap-extend penalties must be positive", ErrInvalidInput)
	}
	return TwoPieceAffine{
		Mismatch: mismatch,
		GapOpen: gapOpen, GapExtend: gapExtend,
		GapOpen2: gapOpen2, GapExtend2: gapExtend2,
	}, nil
}

// MatchMismatch implements Model.
func (t TwoPieceAffine) MatchMismatch(x, y byte) uint64 {
	if x == y {
		return 0
	}
	return t.Mismatch
}

// GapPieces implements Model.
func (t TwoPieceAffine) GapPieces() []GapPiece {
	return []GapPiece{
		{Open: t.GapOpen, Extend: t.GapExtend},
		{Open: t.GapOpen2, Extend: t.GapExtend2},
	}
}

// DefaultDNA is a ready-to-use penalty set for IUPAC nucleotide
// alignment.
func DefaultDNA() Affine {
	return Affine{Mismatch: 4, GapOpen: 6, GapExtend: 2}
}
