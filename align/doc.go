// Package align is the aligner facade: it validates a query, builds the
// bubble index for the current reference-graph snapshot, runs the A*
// search, and converts the backtrace into an Alignment of AlignedPair
// columns ready for graph merging or export.
package align
