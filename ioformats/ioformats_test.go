package ioformats_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poasta-go/poasta/align"
	"github.com/poasta-go/poasta/ioformats"
	"github.com/poasta-go/poasta/merge"
	"github.com/poasta-go/poasta/poagraph"
	"github.com/poasta-go/poasta/score"
)

// buildMSAGraph folds seq1=ACG and then seq2=AG, aligned as
// [A=A, C=-, G=G], into one graph.
func buildMSAGraph(t *testing.T) (*poagraph.Graph, align.Alignment) {
	t.Helper()
	g := poagraph.New()
	_, err := merge.AddAlignment(g, "seq1", []byte("ACG"), nil)
	require.NoError(t, err)

	a := align.New(score.Affine{Mismatch: 4, GapOpen: 6, GapExtend: 2})
	res, err := a.Query(g, []byte("AG"))
	require.NoError(t, err)
	_, err = merge.AddAlignment(g, "seq2", []byte("AG"), res.Alignment)
	require.NoError(t, err)
	return g, res.Alignment
}

func TestWriteDOT(t *testing.T) {
	g, _ := buildMSAGraph(t)
	var buf bytes.Buffer
	require.NoError(t, ioformats.WriteDOT(&buf, g))

	want := `digraph {
rankdir="LR"
1 [label="A"]
2 [label="C"]
3 [label="G"]
1 -> 2
1 -> 3
2 -> 3
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteGFA(t *testing.T) {
	g, _ := buildMSAGraph(t)
	var buf bytes.Buffer
	require.NoError(t, ioformats.WriteGFA(&buf, g))

	want := "H\tVN:Z:1.1\n" +
		"S\ts2\tA\n" +
		"S\ts3\tC\n" +
		"S\ts4\tG\n" +
		"L\ts2\t+\ts3\t+\t0M\n" +
		"L\ts2\t+\ts4\t+\t0M\n" +
		"L\ts3\t+\ts4\t+\t0M\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteFastaMSA(t *testing.T) {
	g, _ := buildMSAGraph(t)
	var buf bytes.Buffer
	require.NoError(t, ioformats.WriteFastaMSA(&buf, g))

	out := buf.String()
	assert.Contains(t, out, ">seq1")
	assert.Contains(t, out, ">seq2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var rows []string
	for _, l := range lines {
		if !strings.HasPrefix(l, ">") && l != "" {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 2)
	assert.Equal(t, "ACG", rows[0])
	assert.Equal(t, "A-G", rows[1])
}

func TestMSAColumnsCollapseAlignedClasses(t *testing.T) {
	g := poagraph.New()
	require.NoError(t, addPair(g))

	cols, n := ioformats.MSAColumns(g)
	assert.Equal(t, 3, n)

	// B and its substitution partner D share one column.
	bySymbol := map[byte]int{}
	for _, node := range g.AllNodes() {
		if c := g.GetSymbolChar(node); c != '-' {
			bySymbol[c] = cols[node]
		}
	}
	assert.Equal(t, bySymbol['B'], bySymbol['D'])
	assert.Less(t, bySymbol['A'], bySymbol['B'])
	assert.Less(t, bySymbol['B'], bySymbol['C'])
}

func addPair(g *poagraph.Graph) error {
	if _, err := merge.AddAlignment(g, "seq1", []byte("ABC"), nil); err != nil {
		return err
	}
	a := align.New(score.Affine{Mismatch: 4, GapOpen: 6, GapExtend: 2})
	res, err := a.Query(g, []byte("ADC"))
	if err != nil {
		return err
	}
	_, err = merge.AddAlignment(g, "seq2", []byte("ADC"), res.Alignment)
	return err
}

func TestWriteGAF(t *testing.T) {
	g, aln := buildMSAGraph(t)
	var buf bytes.Buffer
	require.NoError(t, ioformats.WriteGAF(&buf, g, "seq2", []byte("AG"), aln))

	want := "seq2\t2\t0\t2\t+\t>s2>s3>s4\t3\t0\t3\t2\t3\t255\tcg:Z:1=1D1=\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteGAF_SubstitutionAndInsertion(t *testing.T) {
	g := poagraph.New()
	_, err := merge.AddAlignment(g, "seq1", []byte("ACGT"), nil)
	require.NoError(t, err)

	a := align.New(score.Affine{Mismatch: 4, GapOpen: 6, GapExtend: 2})
	res, err := a.Query(g, []byte("ATGTT"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ioformats.WriteGAF(&buf, g, "q", []byte("ATGTT"), res.Alignment))

	fields := strings.Split(strings.TrimSpace(buf.String()), "\t")
	require.Len(t, fields, 13)
	assert.Equal(t, "q", fields[0])
	assert.Equal(t, "5", fields[1])
	assert.True(t, strings.HasPrefix(fields[12], "cg:Z:"))
	// One substitution at C/T and one trailing insertion.
	assert.Equal(t, "cg:Z:1=1X2=1I", fields[12])
}
