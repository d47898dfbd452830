package poagraph

import "github.com/poasta-go/poasta/refgraph"

// addNodeLocked appends a fresh node carrying symbol b, placing it in its
// own singleton aligned-equivalence class, and returns its handle.
//
// Callers must hold muNodes for writing; addNodeLocked does not lock
// itself so it can be composed with other node-storage mutations under a
// single critical section.
func (g *Graph) addNodeLocked(b byte) refgraph.NodeID {
	id := refgraph.NodeID(len(g.symbols))
	g.symbols = append(g.symbols, b)
	g.succ = append(g.succ, nil)
	g.pred = append(g.pred, nil)
	g.alignedClass = append(g.alignedClass, id)
	g.classMembers[id] = []refgraph.NodeID{id}

	return id
}

// AddNode is the exported, lock-acquiring form of addNodeLocked, used by
// callers (such as tests) that are not already inside a larger mutation.
func (g *Graph) AddNode(b byte) refgraph.NodeID {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	return g.addNodeLocked(b)
}

// Symbol returns the byte carried by a non-sentinel node.
func (g *Graph) Symbol(n refgraph.NodeID) byte {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return g.symbols[n]
}

// SilentSubstitutionForbidden reports whether the graph was built with
// WithForbidSilentSubstitution; the merger consults it before allocating a
// substitution node for a mismatching Match pair.
func (g *Graph) SilentSubstitutionForbidden() bool { return g.forbidSilentSubstitution }
