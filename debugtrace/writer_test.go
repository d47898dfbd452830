package debugtrace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poasta-go/poasta/debugtrace"
)

func TestWriterFlushesAllMessageKindsOnJoin(t *testing.T) {
	dir := t.TempDir()
	w, err := debugtrace.NewWriter(dir)
	require.NoError(t, err)

	w.Send(debugtrace.NewSequence{SeqName: "seq1", Sequence: "ACGT", MaxRank: 6})
	w.Send(debugtrace.IntermediateGraph{GraphDOT: "digraph {\n}\n"})
	w.Send(debugtrace.AstarData{VisitedTSV: "node\toffset\tscore\n"})
	w.Send(debugtrace.Terminate{})

	require.NoError(t, w.Join())

	seqs, err := os.ReadFile(filepath.Join(dir, "sequences.tsv"))
	require.NoError(t, err)
	assert.Equal(t, "seq1\t4\t6\n", string(seqs))

	dot, err := os.ReadFile(filepath.Join(dir, "graph0.dot"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), "digraph"))

	tsv, err := os.ReadFile(filepath.Join(dir, "astar0.tsv"))
	require.NoError(t, err)
	assert.Contains(t, string(tsv), "score")
}

func TestWriterJoinIsIdempotent(t *testing.T) {
	w, err := debugtrace.NewWriter(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Join())
	require.NoError(t, w.Join())

	// Sends after Join are silently ignored, not a panic.
	w.Send(debugtrace.Terminate{})
}

func TestWriterNeverBlocksProducer(t *testing.T) {
	w, err := debugtrace.NewWriter(t.TempDir())
	require.NoError(t, err)

	// Far more messages than the channel buffers; Send must return
	// regardless, dropping the overflow.
	for i := 0; i < 10000; i++ {
		w.Send(debugtrace.AstarData{VisitedTSV: "x"})
	}
	require.NoError(t, w.Join())
}

func TestNoopSink(t *testing.T) {
	var s debugtrace.Sink = debugtrace.Noop{}
	s.Send(debugtrace.Terminate{})
	assert.NoError(t, s.Join())
}
