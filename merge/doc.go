// Package merge folds a computed alignment into the partial-order
// alignment graph: reusing matched nodes, allocating
// substitution and insertion nodes, tagging traversed edges with the new
// sequence ID, and re-establishing topological order. Mutations are
// all-or-nothing — any validation failure rolls the graph back to its
// pre-merge snapshot.
package merge
