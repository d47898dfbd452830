package debugtrace

// Message is one typed debug event.
type Message interface {
	isMessage()
}

// NewSequence announces the start of one query alignment.
type NewSequence struct {
	SeqName  string
	Sequence string
	MaxRank  int
}

// IntermediateGraph carries a DOT rendering of the graph after a merge.
type IntermediateGraph struct {
	GraphDOT string
}

// AstarData carries one alignment's visited-state dump as TSV.
type AstarData struct {
	VisitedTSV string
}

// Terminate tells the writer no further messages will follow.
type Terminate struct{}

func (NewSequence) isMessage()       {}
func (IntermediateGraph) isMessage() {}
func (AstarData) isMessage()         {}
func (Terminate) isMessage()         {}

// Sink is the producer-facing contract: Send never blocks, Join drains
// and flushes.
type Sink interface {
	Send(Message)
	Join() error
}

// Noop is the disabled sink.
type Noop struct{}

// Send implements Sink.
func (Noop) Send(Message) {}

// Join implements Sink.
func (Noop) Join() error { return nil }
