package debugtrace

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Writer collects debug messages over a buffered channel and writes them
// to files under a directory on Join. Sends that arrive while the buffer
// is full are dropped rather than blocking the alignment; Dropped reports
// how many.
type Writer struct {
	dir string
	ch  chan Message
	wg  sync.WaitGroup

	mu      sync.Mutex
	seqs    []NewSequence
	graphs  []string
	tsvs    []string
	dropped int
	closed  bool
}

const sendBuffer = 256

// NewWriter creates the output directory and starts the drain goroutine.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("debugtrace: create output dir: %w", err)
	}
	w := &Writer{dir: dir, ch: make(chan Message, sendBuffer)}
	w.wg.Add(1)
	go w.drain()
	return w, nil
}

// Send implements Sink. It never blocks: if the drain goroutine is
// behind, the message is counted as dropped instead. The mutex spans the
// non-blocking send so Join cannot close the channel mid-send.
func (w *Writer) Send(m Message) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.ch <- m:
	default:
		w.dropped++
	}
}

func (w *Writer) drain() {
	defer w.wg.Done()
	for m := range w.ch {
		switch msg := m.(type) {
		case NewSequence:
			w.mu.Lock()
			w.seqs = append(w.seqs, msg)
			w.mu.Unlock()
		case IntermediateGraph:
			w.mu.Lock()
			w.graphs = append(w.graphs, msg.GraphDOT)
			w.mu.Unlock()
		case AstarData:
			w.mu.Lock()
			w.tsvs = append(w.tsvs, msg.VisitedTSV)
			w.mu.Unlock()
		case Terminate:
			return
		}
	}
}

// Join implements Sink: it stops the drain goroutine, then writes the
// three message families to disk concurrently, returning the first write
// error.
func (w *Writer) Join() error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.ch)
	}
	w.mu.Unlock()
	w.wg.Wait()

	var eg errgroup.Group
	eg.Go(w.writeSequences)
	eg.Go(w.writeGraphs)
	eg.Go(w.writeAstarData)
	return eg.Wait()
}

// Dropped returns how many messages were discarded because the buffer was
// full.
func (w *Writer) Dropped() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropped
}

func (w *Writer) writeSequences() error {
	if len(w.seqs) == 0 {
		return nil
	}
	f, err := os.Create(filepath.Join(w.dir, "sequences.tsv"))
	if err != nil {
		return err
	}
	for _, s := range w.seqs {
		if _, err := fmt.Fprintf(f, "%s\t%d\t%d\n", s.SeqName, len(s.Sequence), s.MaxRank); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

func (w *Writer) writeGraphs() error {
	for i, dot := range w.graphs {
		name := filepath.Join(w.dir, fmt.Sprintf("graph%d.dot", i))
		if err := os.WriteFile(name, []byte(dot), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeAstarData() error {
	for i, tsv := range w.tsvs {
		name := filepath.Join(w.dir, fmt.Sprintf("astar%d.tsv", i))
		if err := os.WriteFile(name, []byte(tsv), 0o644); err != nil {
			return err
		}
	}
	return nil
}

var _ Sink = (*Writer)(nil)
var _ Sink = Noop{}
