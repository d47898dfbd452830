package bubble

import "github.com/poasta-go/poasta/refgraph"

// Build computes the superbubble Index for g.
//
// Algorithm: compute, for every node, its set of dominators (nodes on
// every path from START) and post-dominators (nodes on every path to END),
// via fixed-point set intersection in topological and reverse-topological
// order. A branching node v (out-degree > 1) is a superbubble entrance with
// exit w when w is the nearest (minimum topological rank greater than v's)
// node such that v dominates w and w post-dominates v: every path leaving
// v is guaranteed to reconverge at w before diverging again.
func Build(g refgraph.Graph) *Index {
	nodes := g.AllNodes()
	n := len(nodes)
	order := g.GetNodeOrdering()

	// byRank[r] = the NodeID at topological rank r.
	byRank := make([]refgraph.NodeID, n)
	for _, v := range nodes {
		byRank[order[v]] = v
	}

	dom := computeDominators(g, byRank, order, false)
	pdom := computeDominators(g, byRank, order, true)

	minToEnd, maxToEnd := distancesToEnd(g, byRank)

	idx := &Index{
		entrance: make(map[refgraph.NodeID]bool),
		exit:     make(map[refgraph.NodeID]bool),
		entries:  make(map[refgraph.NodeID][]Entry),
		minToEnd: minToEnd,
		maxToEnd: maxToEnd,
		endNode:  g.EndNode(),
	}

	for _, v := range byRank {
		if g.OutDegree(v) <= 1 {
			continue
		}
		exit, ok := nearestBubbleExit(g, v, dom, pdom, order, byRank)
		if !ok {
			continue
		}
		// The region reconverging only at END is the whole remaining
		// graph, not a bubble worth indexing: its distances are already
		// captured by minToEnd/maxToEnd, and its entries would shadow
		// every real bubble's.
		if exit == idx.endNode {
			continue
		}
		idx.entrance[v] = true
		idx.exit[exit] = true

		dist := distancesToward(g, exit)
		for _, u := range byRank {
			// u lies inside the [v, exit] bubble iff v dominates u and
			// exit post-dominates u; the exit itself records distance 0.
			if !dom[u][v] || !pdom[u][exit] {
				continue
			}
			d, reachable := dist[u]
			if !reachable {
				continue
			}
			idx.entries[u] = append(idx.entries[u], Entry{Exit: exit, MinDistToExit: d})
		}
	}

	for u, entries := range idx.entries {
		sortEntriesByDistance(entries)
		idx.entries[u] = entries
	}

	return idx
}

// computeDominators returns, for every node v, the set of nodes that lie
// on every path from the source (START, or END when reverse is true) to v.
// It is computed by fixed-point intersection over predecessors (or
// successors, when reverse) in topological order.
func computeDominators(g refgraph.Graph, byRank []refgraph.NodeID, order []int, reverse bool) map[refgraph.NodeID]map[refgraph.NodeID]bool {
	dom := make(map[refgraph.NodeID]map[refgraph.NodeID]bool, len(byRank))

	visit := func(v refgraph.NodeID) []refgraph.NodeID {
		if reverse {
			return g.Successors(v)
		}
		return g.Predecessors(v)
	}

	// Iterate nodes in an order where every "incoming" (predecessor, or
	// successor when reverse) node is processed first: topological order
	// forward, or reverse topological order backward.
	n := len(byRank)
	for i := 0; i < n; i++ {
		idx := i
		if reverse {
			idx = n - 1 - i
		}
		v := byRank[idx]
		ins := visit(v)
		if len(ins) == 0 {
			dom[v] = map[refgraph.NodeID]bool{v: true}
			continue
		}
		var merged map[refgraph.NodeID]bool
		for _, p := range ins {
			pd := dom[p]
			if merged == nil {
				merged = make(map[refgraph.NodeID]bool, len(pd)+1)
				for u := range pd {
					merged[u] = true
				}
				continue
			}
			for u := range merged {
				if !pd[u] {
					delete(merged, u)
				}
			}
		}
		merged[v] = true
		dom[v] = merged
	}

	return dom
}

// nearestBubbleExit finds, among every node w with v ∈ dom[w] and
// w ∈ pdom[v], the one with the smallest topological rank greater than
// v's rank — the immediately reconverging exit.
func nearestBubbleExit(
	g refgraph.Graph,
	v refgraph.NodeID,
	dom, pdom map[refgraph.NodeID]map[refgraph.NodeID]bool,
	order []int,
	byRank []refgraph.NodeID,
) (refgraph.NodeID, bool) {
	vRank := order[v]
	for r := vRank + 1; r < len(byRank); r++ {
		w := byRank[r]
		if w == v {
			continue
		}
		if dom[w][v] && pdom[v][w] {
			return w, true
		}
	}
	return 0, false
}

// distancesToEnd computes, per node, the minimum and maximum forward
// edge-count distances to END by a reverse-topological dynamic program.
// Every node in a well-formed reference graph reaches END, so both arrays
// are total.
func distancesToEnd(g refgraph.Graph, byRank []refgraph.NodeID) (minTo, maxTo []int) {
	n := len(byRank)
	minTo = make([]int, n)
	maxTo = make([]int, n)
	end := g.EndNode()

	for r := n - 1; r >= 0; r-- {
		v := byRank[r]
		if v == end {
			continue
		}
		first := true
		for _, s := range g.Successors(v) {
			dMin, dMax := minTo[s]+1, maxTo[s]+1
			if first {
				minTo[v], maxTo[v] = dMin, dMax
				first = false
				continue
			}
			if dMin < minTo[v] {
				minTo[v] = dMin
			}
			if dMax > maxTo[v] {
				maxTo[v] = dMax
			}
		}
	}
	return minTo, maxTo
}

// distancesToward returns, for every node that can reach exit, the
// shortest forward edge-count distance to it, computed by a BFS over the
// reversed graph rooted at exit.
func distancesToward(g refgraph.Graph, exit refgraph.NodeID) map[refgraph.NodeID]int {
	dist := map[refgraph.NodeID]int{exit: 0}
	queue := []refgraph.NodeID{exit}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		for _, p := range g.Predecessors(cur) {
			if _, seen := dist[p]; seen {
				continue
			}
			dist[p] = d + 1
			queue = append(queue, p)
		}
	}
	return dist
}

func sortEntriesByDistance(entries []Entry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].MinDistToExit < entries[j-1].MinDistToExit; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}
