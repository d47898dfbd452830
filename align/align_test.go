package align_test

import (
	"errors"
	"testing"

	"github.com/poasta-go/poasta/align"
	"github.com/poasta-go/poasta/refgraph"
	"github.com/poasta-go/poasta/score"
)

var testModel = score.Affine{Mismatch: 4, GapOpen: 6, GapExtend: 2}

func TestQuery_PerfectMatch(t *testing.T) {
	g := refgraph.LinearMock("ACT")
	res, err := align.Query(align.New(testModel), g, []byte("ACT"))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.Score != 0 {
		t.Fatalf("Score = %d, want 0", res.Score)
	}
	if len(res.Alignment) != 3 {
		t.Fatalf("len(Alignment) = %d, want 3", len(res.Alignment))
	}
	for i, p := range res.Alignment {
		if !p.IsAligned() || p.Query != i {
			t.Errorf("column %d = %+v, want match at query %d", i, p, i)
		}
	}
}

func TestQuery_ScoreRoundTrip(t *testing.T) {
	// Recomputing the cost from the returned columns must reproduce the
	// search's final g-score, whatever shape the optimum takes.
	cases := []struct{ ref, query string }{
		{"ACT", "ACT"},
		{"ACT", "AGT"},
		{"ACGT", "AT"},
		{"AT", "ACGT"},
		{"ACGTACGT", "ACTTAGGT"},
		{"GATTACA", "GCATGCT"},
	}
	for _, tc := range cases {
		g := refgraph.LinearMock(tc.ref)
		res, err := align.Query(align.New(testModel), g, []byte(tc.query))
		if err != nil {
			t.Fatalf("Query(%q, %q): %v", tc.ref, tc.query, err)
		}
		recomputed := res.Alignment.ScoreOf(g, []byte(tc.query), testModel)
		if recomputed != res.Score {
			t.Errorf("%q vs %q: ScoreOf = %d, FinalScore = %d",
				tc.ref, tc.query, recomputed, res.Score)
		}
	}
}

func TestQuery_MatchesExplicitDPTable(t *testing.T) {
	// Exhaustive minimum over the (node, offset, state) table for tiny
	// linear references, computed by value iteration; the A* result must
	// agree exactly.
	cases := []struct{ ref, query string }{
		{"A", "A"},
		{"A", "C"},
		{"AC", "A"},
		{"A", "AC"},
		{"ACG", "AG"},
		{"ACG", "TACG"},
		{"ACGTA", "ACTA"},
	}
	for _, tc := range cases {
		g := refgraph.LinearMock(tc.ref)
		res, err := align.Query(align.New(testModel), g, []byte(tc.query))
		if err != nil {
			t.Fatalf("Query(%q, %q): %v", tc.ref, tc.query, err)
		}
		want := linearDP(tc.ref, tc.query, testModel)
		if res.Score != want {
			t.Errorf("%q vs %q: Score = %d, DP table says %d", tc.ref, tc.query, res.Score, want)
		}
	}
}

// linearDP is a textbook affine-gap Gotoh table over a linear reference,
// the explicit-table oracle of the search core's optimality property.
func linearDP(ref, query string, m score.Affine) uint64 {
	const inf = uint64(1) << 62
	n, l := len(ref), len(query)

	M := make([][]uint64, n+1)
	I := make([][]uint64, n+1)
	D := make([][]uint64, n+1)
	for i := 0; i <= n; i++ {
		M[i] = make([]uint64, l+1)
		I[i] = make([]uint64, l+1)
		D[i] = make([]uint64, l+1)
		for j := 0; j <= l; j++ {
			M[i][j], I[i][j], D[i][j] = inf, inf, inf
		}
	}
	M[0][0] = 0
	for j := 1; j <= l; j++ {
		I[0][j] = m.GapOpen + uint64(j)*m.GapExtend
	}
	for i := 1; i <= n; i++ {
		D[i][0] = m.GapOpen + uint64(i)*m.GapExtend
	}

	min := func(vals ...uint64) uint64 {
		best := vals[0]
		for _, v := range vals[1:] {
			if v < best {
				best = v
			}
		}
		return best
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= l; j++ {
			sub := uint64(0)
			if ref[i-1] != query[j-1] {
				sub = m.Mismatch
			}
			M[i][j] = min(M[i-1][j-1], I[i-1][j-1], D[i-1][j-1]) + sub
			I[i][j] = min(M[i][j-1]+m.GapOpen+m.GapExtend, I[i][j-1]+m.GapExtend)
			D[i][j] = min(M[i-1][j]+m.GapOpen+m.GapExtend, D[i-1][j]+m.GapExtend)
		}
	}
	return min(M[n][l], I[n][l], D[n][l])
}

func TestQuery_UnrecognizedByteRejected(t *testing.T) {
	g := refgraph.LinearMock("ACT")
	_, err := align.Query(align.New(testModel), g, []byte("A!T"))
	if !errors.Is(err, score.ErrUnrecognizedSymbol) {
		t.Fatalf("err = %v, want ErrUnrecognizedSymbol", err)
	}
}

func TestQuery_EmptyQueryRejected(t *testing.T) {
	g := refgraph.LinearMock("ACT")
	_, err := align.Query(align.New(testModel), g, nil)
	if !errors.Is(err, align.ErrEmptyQuery) {
		t.Fatalf("err = %v, want ErrEmptyQuery", err)
	}
}

func TestPretty(t *testing.T) {
	g := refgraph.LinearMock("ACT")
	res, err := align.Query(align.New(testModel), g, []byte("AGT"))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	want := "ACT\n|.|\nAGT\n"
	if got := res.Alignment.Pretty(g, []byte("AGT")); got != want {
		t.Fatalf("Pretty =\n%q\nwant\n%q", got, want)
	}
}

func TestPretty_Indels(t *testing.T) {
	g := refgraph.LinearMock("ACT")
	res, err := align.Query(align.New(testModel), g, []byte("AT"))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	want := "ACT\n| |\nA-T\n"
	if got := res.Alignment.Pretty(g, []byte("AT")); got != want {
		t.Fatalf("Pretty =\n%q\nwant\n%q", got, want)
	}
}
