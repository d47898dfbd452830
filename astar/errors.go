package astar

import "errors"

// ErrBudgetExhausted is returned when the visited-state count (popped
// states plus DFA match states) reaches the configured MaxVisitedStates
// budget before a goal is reached.
var ErrBudgetExhausted = errors.New("astar: max visited states budget exhausted")

// ErrNoAlignment is returned when the open set drains without reaching a
// goal state. A well-formed reference graph (every node on a START-to-END
// path) always admits an all-indel alignment, so this signals a malformed
// graph rather than a hard query.
var ErrNoAlignment = errors.New("astar: no alignment found")
