package astar

import "github.com/poasta-go/poasta/visited"

// Options configures one search run.
type Options struct {
	// EndsFree accepts any state at offset == len(query) as a goal,
	// regardless of whether the reference graph's END has been reached:
	// unaligned reference prefixes and suffixes cost nothing, while the
	// query is still consumed in full.
	EndsFree bool

	// MaxVisitedStates caps the visited-state count (states popped off the
	// open set plus match states the DFA extension wrote, the same count
	// Result.NumVisited reports) before the search gives up with
	// ErrBudgetExhausted. Zero means unbounded.
	MaxVisitedStates int
}

// Option mutates Options; see WithEndsFree, WithMaxVisitedStates.
type Option func(*Options)

// WithEndsFree enables ends-free alignment.
func WithEndsFree() Option {
	return func(o *Options) { o.EndsFree = true }
}

// WithMaxVisitedStates sets the visited-state budget.
func WithMaxVisitedStates(n int) Option {
	return func(o *Options) { o.MaxVisitedStates = n }
}

func defaultOptions() Options {
	return Options{EndsFree: false, MaxVisitedStates: 0}
}

// Result is the outcome of a successful search.
type Result struct {
	// Steps is the backtraced alignment in forward order.
	Steps []visited.Step

	// FinalScore is the goal state's g-score.
	FinalScore uint64

	// NumVisited counts states popped off the open set plus match states
	// the DFA extension wrote; NumPruned counts candidates the bubble
	// dominance test discarded.
	NumVisited int
	NumPruned  int
}
