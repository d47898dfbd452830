package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/poasta-go/poasta/ioformats"
	"github.com/poasta-go/poasta/poagraph"
	"github.com/poasta-go/poasta/refgraph"
)

func exportCmd() *cobra.Command {
	var (
		out     string
		format  string
		protein bool
	)

	cmd := &cobra.Command{
		Use:   "export <msa.fasta>",
		Short: "rebuild a POA graph from a gapped MSA and export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := readFasta(args[0], protein)
			if err != nil {
				return err
			}
			g, err := graphFromMSA(recs)
			if err != nil {
				return err
			}

			var fn func(io.Writer) error
			switch format {
			case "gfa":
				fn = func(w io.Writer) error { return ioformats.WriteGFA(w, g) }
			case "dot":
				fn = func(w io.Writer) error { return ioformats.WriteDOT(w, g) }
			case "msa":
				fn = func(w io.Writer) error { return ioformats.WriteFastaMSA(w, g) }
			default:
				return fmt.Errorf("unknown format %q (want gfa, dot, or msa)", format)
			}
			return writeOutput(out, fn)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default stdout)")
	cmd.Flags().StringVar(&format, "format", "gfa", "output format: gfa, dot, or msa")
	cmd.Flags().BoolVar(&protein, "protein", false, "treat input as amino-acid sequences")
	return cmd
}

// graphFromMSA rebuilds a POA graph from aligned rows: each column holds
// one node per distinct symbol, all sharing one aligned-equivalence
// class, and each row threads its sequence ID through the nodes of its
// ungapped positions.
func graphFromMSA(recs []fastaRecord) (*poagraph.Graph, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("export: no sequences")
	}
	width := len(recs[0].seq)
	for _, r := range recs {
		if len(r.seq) != width {
			return nil, fmt.Errorf("export: %s: row length %d != %d", r.name, len(r.seq), width)
		}
	}

	g := poagraph.New()
	colNodes := make([]map[byte]refgraph.NodeID, width)
	for c := range colNodes {
		colNodes[c] = make(map[byte]refgraph.NodeID)
	}

	for _, rec := range recs {
		seqID := g.NextSeqID()
		pred := g.StartNode()
		first := refgraph.NodeID(-1)
		for c, b := range rec.seq {
			if b == '-' {
				continue
			}
			node, ok := colNodes[c][b]
			if !ok {
				node = g.AddNode(b)
				for _, other := range colNodes[c] {
					g.JoinClass(other, node)
					break
				}
				colNodes[c][b] = node
			}
			g.Connect(pred, node, seqID, 1)
			pred = node
			if first < 0 {
				first = node
			}
		}
		if first < 0 {
			return nil, fmt.Errorf("export: %s: all-gap row", rec.name)
		}
		g.Connect(pred, g.EndNode(), seqID, 0)
		g.AddSequenceRecord(poagraph.SequenceRecord{Name: rec.name, StartNode: first})
	}

	g.RecomputeTopoOrder()
	return g, nil
}
