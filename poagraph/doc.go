// Package poagraph implements the concrete, mutable, content-addressed
// partial-order alignment graph: the reference graph the alignment core
// searches over, and the only graph kind the merge package mutates.
//
// Ownership is split across two mutexes — one for node storage, one for
// edges and adjacency — and construction goes through functional Options,
// with nodes bearing symbols, edges labeled by the sequence IDs that
// traverse them, and an aligned-equivalence partition tying together the
// nodes of one MSA column.
package poagraph
