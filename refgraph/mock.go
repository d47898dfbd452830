package refgraph

// Mock is a minimal, hand-buildable refgraph.Graph used by tests for dfa,
// astar and bubble without the overhead of constructing a real
// poagraph.Graph.
type Mock struct {
	symbols []byte // symbols[rank] for non-sentinel ranks; START/END excluded
	succ    [][]NodeID
	pred    [][]NodeID
	start   NodeID
	end     NodeID
	order   []int
}

// NewMock builds an empty Mock with the two sentinels and no other nodes.
func NewMock() *Mock {
	m := &Mock{
		symbols: nil,
		succ:    [][]NodeID{{}, {}},
		pred:    [][]NodeID{{}, {}},
		start:   0,
		end:     1,
	}
	m.recomputeOrder()
	return m
}

// AddNode appends a new non-sentinel node carrying symbol b and returns its
// NodeID.
func (m *Mock) AddNode(b byte) NodeID {
	id := NodeID(len(m.succ))
	m.symbols = append(m.symbols, b)
	m.succ = append(m.succ, nil)
	m.pred = append(m.pred, nil)
	return id
}

// AddEdge adds a directed edge from u to v.
func (m *Mock) AddEdge(u, v NodeID) {
	m.succ[u] = append(m.succ[u], v)
	m.pred[v] = append(m.pred[v], u)
}

// Finalize recomputes the cached topological order after a batch of
// AddNode/AddEdge calls. Call it once the fixture is fully built.
func (m *Mock) Finalize() { m.recomputeOrder() }

// recomputeOrder runs a plain DFS-based topological sort; Mock is
// test-only, so it does not need the gonum-backed machinery
// poagraph.Graph uses.
func (m *Mock) recomputeOrder() {
	n := len(m.succ)
	state := make([]uint8, n)
	order := make([]int, n)
	pos := n
	var visit func(NodeID)
	visit = func(v NodeID) {
		if state[v] != 0 {
			return
		}
		state[v] = 1
		for _, w := range m.succ[v] {
			visit(w)
		}
		pos--
		order[v] = pos
	}
	for v := 0; v < n; v++ {
		visit(NodeID(v))
	}
	m.order = order
}

var _ Graph = (*Mock)(nil)

func (m *Mock) AllNodes() []NodeID {
	out := make([]NodeID, len(m.succ))
	for i := range out {
		out[i] = NodeID(i)
	}
	return out
}

func (m *Mock) NodeCount() int                 { return len(m.succ) - 2 }
func (m *Mock) NodeCountWithStartAndEnd() int  { return len(m.succ) }
func (m *Mock) EdgeCount() int {
	n := 0
	for _, s := range m.succ {
		n += len(s)
	}
	return n
}
func (m *Mock) StartNode() NodeID { return m.start }
func (m *Mock) EndNode() NodeID   { return m.end }
func (m *Mock) IsEnd(n NodeID) bool { return n == m.end }

func (m *Mock) Predecessors(n NodeID) []NodeID { return m.pred[n] }
func (m *Mock) Successors(n NodeID) []NodeID   { return m.succ[n] }
func (m *Mock) InDegree(n NodeID) int          { return len(m.pred[n]) }
func (m *Mock) OutDegree(n NodeID) int         { return len(m.succ[n]) }

func (m *Mock) IsSymbolEqual(n NodeID, b byte) bool {
	if n == m.start || n == m.end {
		return false
	}
	idx := int(n) - 2
	if idx < 0 || idx >= len(m.symbols) {
		return false
	}
	return m.symbols[idx] == b
}

func (m *Mock) GetSymbolChar(n NodeID) byte {
	if n == m.start || n == m.end {
		return '-'
	}
	idx := int(n) - 2
	if idx < 0 || idx >= len(m.symbols) {
		return '-'
	}
	return m.symbols[idx]
}

func (m *Mock) GetNodeOrdering() []int { return m.order }

// LinearMock builds a Mock over a linear chain START -> seq[0] -> ... ->
// seq[n-1] -> END, the fixture shape most alignment tests use.
func LinearMock(seq string) *Mock {
	m := NewMock()
	prev := m.start
	for i := 0; i < len(seq); i++ {
		n := m.AddNode(seq[i])
		m.AddEdge(prev, n)
		prev = n
	}
	m.AddEdge(prev, m.end)
	m.Finalize()
	return m
}
