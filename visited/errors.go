package visited

import "errors"

// ErrNoSuchState is returned by Backtrace when the requested terminal state
// was never reached by the search that populated this store.
var ErrNoSuchState = errors.New("visited: terminal state was never reached")
