package poagraph

import "github.com/poasta-go/poasta/refgraph"

// findRepLocked returns the representative of n's aligned-equivalence
// class, applying path compression. Callers must hold muNodes.
func (g *Graph) findRepLocked(n refgraph.NodeID) refgraph.NodeID {
	root := n
	for g.alignedClass[root] != root {
		root = g.alignedClass[root]
	}
	// Path compression: point every visited node directly at root.
	for g.alignedClass[n] != root {
		next := g.alignedClass[n]
		g.alignedClass[n] = root
		n = next
	}
	return root
}

// addToClassLocked merges newNode into existing's aligned-equivalence
// class. Callers must hold muNodes.
func (g *Graph) addToClassLocked(existing, newNode refgraph.NodeID) {
	rep := g.findRepLocked(existing)
	newRep := g.findRepLocked(newNode)
	if rep == newRep {
		return
	}
	g.alignedClass[newRep] = rep
	g.classMembers[rep] = append(g.classMembers[rep], g.classMembers[newRep]...)
	delete(g.classMembers, newRep)
}

// AlignedNodes returns the equivalence class of nodes occupying the same
// MSA column as v, including v itself.
func (g *Graph) AlignedNodes(v refgraph.NodeID) []refgraph.NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	rep := v
	for g.alignedClass[rep] != rep {
		rep = g.alignedClass[rep]
	}
	members := g.classMembers[rep]
	out := make([]refgraph.NodeID, len(members))
	copy(out, members)
	return out
}
