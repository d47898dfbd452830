package align

import "errors"

// ErrEmptyQuery is returned when Query is handed a zero-length query (an
// empty query against a non-empty graph is a pure deletion chain, almost
// always a caller bug).
var ErrEmptyQuery = errors.New("align: empty query")
