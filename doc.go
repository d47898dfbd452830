// Package poasta is a partial-order alignment (POA) engine: it aligns
// query byte sequences against a directed acyclic sequence graph under
// affine or two-piece (convex) gap scoring, and folds each aligned query
// back into the graph so later queries align against an evolving
// consensus.
//
// The alignment core is an A*-guided search over the implicit product of
// graph nodes, query offsets, and gap states, with a depth-first greedy
// extension that collapses zero-cost match runs, and a precomputed
// superbubble index serving both as an admissible heuristic and as a
// dominance-pruning oracle.
//
// The module is organized leaves-first:
//
//	score/      — scores with an unvisited sentinel; affine and two-piece gap models
//	refgraph/   — the reference-graph contract every graph kind satisfies, plus a test mock
//	poagraph/   — the mutable, content-addressed POA graph
//	bubble/     — superbubble detection and per-node exit distances
//	visited/    — per-(node, offset, state) score and parent bookkeeping
//	dfa/        — depth-first greedy match extension
//	astar/      — the search driver
//	align/      — the aligner facade and alignment column types
//	merge/      — folding alignments into the graph
//	ioformats/  — DOT, GFA, FASTA MSA, and GAF exporters
//	debugtrace/ — non-blocking debug-output writer
//	cmd/poasta  — the CLI front-end
package poasta
