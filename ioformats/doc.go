// Package ioformats renders a POA graph and its alignments into the
// interchange formats downstream tools consume: DOT for visualization,
// GFA v1.1 for graph exchange, FASTA for the multiple-sequence-alignment
// view, and GAF for per-query alignment records.
package ioformats
