// Package bitindex provides a 256-slot bitmap over byte alphabets, used to
// reject query bytes the configured alphabet does not recognize before the
// search starts.
package bitindex

import "github.com/biogo/biogo/alphabet"

// Set is a membership bitmap over all 256 byte values. The zero value is
// the empty set.
type Set struct {
	bits [4]uint64
}

// New builds a Set containing exactly the given letters.
func New(letters []byte) Set {
	var s Set
	for _, b := range letters {
		s.bits[b>>6] |= 1 << (b & 63)
	}
	return s
}

// Contains reports whether b is in the set.
func (s Set) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// Validate scans seq and returns the index of the first byte outside the
// set, or (-1, true) when every byte is recognized.
func (s Set) Validate(seq []byte) (int, bool) {
	for i, b := range seq {
		if !s.Contains(b) {
			return i, false
		}
	}
	return -1, true
}

// IUPACNucleotide returns the set of IUPAC nucleotide codes, both cases,
// built from biogo's redundant DNA table (the full ambiguity-code
// alphabet).
func IUPACNucleotide() Set {
	return New([]byte(alphabet.DNAredundant.Letters()))
}

// Protein returns the set of amino-acid codes, both cases, from biogo's
// gapped protein table.
func Protein() Set {
	return New([]byte(alphabet.Protein.Letters()))
}
