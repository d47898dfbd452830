package score

import "math"

// Score represents the cost of a partial alignment. The zero value is the
// finite score 0 (a perfect, cost-free alignment so far); Unvisited is a
// sentinel representing "never reached", ordered strictly greater than any
// finite score.
//
// Score is a value type: copy it freely, compare it with ==, and pass it
// across package boundaries without worrying about aliasing.
type Score struct {
	// value holds the finite cost when unvisited is false. It is otherwise
	// meaningless and must not be read directly.
	value uint64

	// unvisited marks the sentinel state. Kept as a separate bool (rather
	// than reserving a magic value of `value`) so Add and comparisons never
	// have to special-case a reserved constant.
	unvisited bool
}

// maxFinite is the largest finite Score value representable; saturating
// addition clamps to this instead of wrapping around.
const maxFinite uint64 = math.MaxUint64 / 2

// Unvisited is the sentinel Score for alignment-graph states that have not
// yet been reached by the A* search.
var Unvisited = Score{unvisited: true}

// Zero is the finite, cost-free score.
var Zero = Score{value: 0}

// New returns a finite Score wrapping the given nonnegative cost.
func New(value uint64) Score {
	if value > maxFinite {
		value = maxFinite
	}
	return Score{value: value}
}

// IsUnvisited reports whether s is the Unvisited sentinel.
func (s Score) IsUnvisited() bool { return s.unvisited }

// Value returns the finite cost and true, or (0, false) if s is Unvisited.
func (s Score) Value() (uint64, bool) {
	if s.unvisited {
		return 0, false
	}
	return s.value, true
}

// Add returns s + delta, saturating at maxFinite. Adding to Unvisited
// yields Unvisited: an unreached state has no meaningful finite cost to
// accumulate onto.
func (s Score) Add(delta uint64) Score {
	if s.unvisited {
		return Unvisited
	}
	sum := s.value + delta
	if sum < s.value || sum > maxFinite {
		sum = maxFinite
	}
	return Score{value: sum}
}

// Less reports whether s sorts strictly before other: Unvisited is greater
// than every finite score, and finite scores compare numerically.
func (s Score) Less(other Score) bool {
	if s.unvisited {
		return false
	}
	if other.unvisited {
		return true
	}
	return s.value < other.value
}

// LessOrEqual reports whether s sorts at or before other.
func (s Score) LessOrEqual(other Score) bool {
	return s == other || s.Less(other)
}

// String renders the score for debug output and TSV dumps.
func (s Score) String() string {
	if s.unvisited {
		return "unvisited"
	}
	return uitoa(s.value)
}

// uitoa is a tiny unsigned-to-decimal helper, keeping fmt out of the
// hot-path String method.
func uitoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
