package score

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the score package.
var (
	// ErrInvalidInput is returned when a scoring model is built from
	// degenerate parameters (zero mismatch or gap-extend penalties); it
	// also matches ErrUnrecognizedSymbol, which wraps it.
	ErrInvalidInput = errors.New("score: invalid input")

	// ErrUnrecognizedSymbol is returned when a query byte falls outside
	// the alphabet the aligner was configured to recognize; this is an
	// error, not a silent mismatch against every graph symbol. It wraps
	// ErrInvalidInput.
	ErrUnrecognizedSymbol = fmt.Errorf("%w: unrecognized query symbol", ErrInvalidInput)
)
