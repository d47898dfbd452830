package align

import (
	"fmt"

	"github.com/poasta-go/poasta/astar"
	"github.com/poasta-go/poasta/bubble"
	"github.com/poasta-go/poasta/internal/bitindex"
	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/score"
)

// Aligner orchestrates single-query alignments against an evolving
// reference graph. It is cheap to construct and carries no per-query
// state; the visited store, DFA stack, and bubble index live only for the
// duration of one Query call.
type Aligner struct {
	model    score.Model
	alphabet bitindex.Set
	endsFree bool
	budget   int
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithEndsFree makes unaligned reference prefixes and suffixes free.
func WithEndsFree() Option {
	return func(a *Aligner) { a.endsFree = true }
}

// WithMaxVisitedStates bounds the A* search; zero means unbounded.
func WithMaxVisitedStates(n int) Option {
	return func(a *Aligner) { a.budget = n }
}

// WithAlphabet replaces the default IUPAC nucleotide alphabet used to
// validate query bytes.
func WithAlphabet(s bitindex.Set) Option {
	return func(a *Aligner) { a.alphabet = s }
}

// New builds an Aligner for the given scoring model.
func New(model score.Model, opts ...Option) *Aligner {
	a := &Aligner{
		model:    model,
		alphabet: bitindex.IUPACNucleotide(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result bundles one query alignment with its cost and search counters.
type Result struct {
	Alignment  Alignment
	Score      uint64
	NumVisited int
	NumPruned  int
}

// Query aligns query against g: validate, build the bubble index for this
// graph snapshot, run A*, backtrace. Generic over the concrete graph type
// so the search core is monomorphized.
func Query[G refgraph.Graph](a *Aligner, g G, query []byte) (*Result, error) {
	if len(query) == 0 {
		return nil, ErrEmptyQuery
	}
	if i, ok := a.alphabet.Validate(query); !ok {
		return nil, fmt.Errorf("%w: byte %q at position %d", score.ErrUnrecognizedSymbol, query[i], i)
	}

	var opts []astar.Option
	if a.endsFree {
		opts = append(opts, astar.WithEndsFree())
	}
	if a.budget > 0 {
		opts = append(opts, astar.WithMaxVisitedStates(a.budget))
	}

	res, err := astar.Align(g, query, a.model, bubble.Build(g), opts...)
	if err != nil {
		return nil, err
	}
	return &Result{
		Alignment:  FromSteps(res.Steps),
		Score:      res.FinalScore,
		NumVisited: res.NumVisited,
		NumPruned:  res.NumPruned,
	}, nil
}

// Query is the interface-typed convenience form of the package-level
// generic Query function.
func (a *Aligner) Query(g refgraph.Graph, query []byte) (*Result, error) {
	return Query(a, g, query)
}
