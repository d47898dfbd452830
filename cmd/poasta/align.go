package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/spf13/cobra"

	"github.com/poasta-go/poasta/align"
	"github.com/poasta-go/poasta/debugtrace"
	"github.com/poasta-go/poasta/internal/bitindex"
	"github.com/poasta-go/poasta/ioformats"
	"github.com/poasta-go/poasta/merge"
	"github.com/poasta-go/poasta/poagraph"
	"github.com/poasta-go/poasta/score"
)

type fastaRecord struct {
	name string
	seq  []byte
}

func readFasta(path string, protein bool) ([]fastaRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	alpha := alphabet.Alphabet(alphabet.DNAgapped)
	if protein {
		alpha = alphabet.Protein
	}

	var recs []fastaRecord
	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alpha)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		recs = append(recs, fastaRecord{name: s.ID, seq: []byte(s.Seq.String())})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return recs, nil
}

type alignedQuery struct {
	name string
	seq  []byte
	aln  align.Alignment
}

func alignCmd() *cobra.Command {
	var (
		gfaOut, dotOut, msaOut, gafOut string
		debugDir                       string
		mismatch, gapOpen, gapExtend   uint64
		gapOpen2, gapExtend2           uint64
		twoPiece, endsFree, protein    bool
		maxVisited                     int
	)

	cmd := &cobra.Command{
		Use:   "align <sequences.fasta>",
		Short: "align sequences into a POA graph and export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := readFasta(args[0], protein)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return fmt.Errorf("%s: no sequences", args[0])
			}

			var model score.Model = score.Affine{
				Mismatch: mismatch, GapOpen: gapOpen, GapExtend: gapExtend,
			}
			if twoPiece {
				model = score.TwoPieceAffine{
					Mismatch: mismatch,
					GapOpen:  gapOpen, GapExtend: gapExtend,
					GapOpen2: gapOpen2, GapExtend2: gapExtend2,
				}
			}

			opts := []align.Option{}
			if endsFree {
				opts = append(opts, align.WithEndsFree())
			}
			if maxVisited > 0 {
				opts = append(opts, align.WithMaxVisitedStates(maxVisited))
			}
			if protein {
				opts = append(opts, align.WithAlphabet(bitindex.Protein()))
			}
			aligner := align.New(model, opts...)

			var sink debugtrace.Sink = debugtrace.Noop{}
			if debugDir != "" {
				w, err := debugtrace.NewWriter(debugDir)
				if err != nil {
					return err
				}
				sink = w
			}

			g := poagraph.New()
			var queries []alignedQuery
			for _, rec := range recs {
				sink.Send(debugtrace.NewSequence{
					SeqName:  rec.name,
					Sequence: string(rec.seq),
					MaxRank:  g.NodeCountWithStartAndEnd(),
				})

				var aln align.Alignment
				if g.NodeCount() > 0 {
					start := time.Now()
					res, err := aligner.Query(g, rec.seq)
					if err != nil {
						return fmt.Errorf("align %s: %w", rec.name, err)
					}
					aln = res.Alignment
					log.Printf("%s: score=%d visited=%d pruned=%d elapsed=%s",
						rec.name, res.Score, res.NumVisited, res.NumPruned,
						time.Since(start).Round(time.Microsecond))
				}
				if _, err := merge.AddAlignment(g, rec.name, rec.seq, aln); err != nil {
					return fmt.Errorf("merge %s: %w", rec.name, err)
				}
				queries = append(queries, alignedQuery{name: rec.name, seq: rec.seq, aln: aln})

				if debugDir != "" {
					var buf bytes.Buffer
					if err := ioformats.WriteDOT(&buf, g); err == nil {
						sink.Send(debugtrace.IntermediateGraph{GraphDOT: buf.String()})
					}
				}
			}
			sink.Send(debugtrace.Terminate{})
			if err := sink.Join(); err != nil {
				return err
			}

			if err := writeOutput(gfaOut, func(w io.Writer) error { return ioformats.WriteGFA(w, g) }); err != nil {
				return err
			}
			if dotOut != "" {
				if err := writeFile(dotOut, func(w io.Writer) error { return ioformats.WriteDOT(w, g) }); err != nil {
					return err
				}
			}
			if msaOut != "" {
				if err := writeFile(msaOut, func(w io.Writer) error { return ioformats.WriteFastaMSA(w, g) }); err != nil {
					return err
				}
			}
			if gafOut != "" {
				err := writeFile(gafOut, func(w io.Writer) error {
					for _, q := range queries {
						if q.aln == nil {
							continue
						}
						if err := ioformats.WriteGAF(w, g, q.name, q.seq, q.aln); err != nil {
							return err
						}
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&gfaOut, "output", "o", "", "GFA output path (default stdout)")
	cmd.Flags().StringVar(&dotOut, "dot", "", "also write a DOT rendering to this path")
	cmd.Flags().StringVar(&msaOut, "msa", "", "also write the MSA as gapped FASTA to this path")
	cmd.Flags().StringVar(&gafOut, "gaf", "", "also write per-query GAF records to this path")
	cmd.Flags().StringVar(&debugDir, "debug-dir", "", "write search debug data into this directory")
	cmd.Flags().Uint64Var(&mismatch, "mismatch", 4, "mismatch penalty")
	cmd.Flags().Uint64Var(&gapOpen, "gap-open", 6, "gap open penalty")
	cmd.Flags().Uint64Var(&gapExtend, "gap-extend", 2, "gap extend penalty")
	cmd.Flags().BoolVar(&twoPiece, "two-piece", false, "use two-piece (convex) gap scoring")
	cmd.Flags().Uint64Var(&gapOpen2, "gap-open2", 24, "second-piece gap open penalty")
	cmd.Flags().Uint64Var(&gapExtend2, "gap-extend2", 1, "second-piece gap extend penalty")
	cmd.Flags().BoolVar(&endsFree, "ends-free", false, "free unaligned reference prefixes/suffixes")
	cmd.Flags().IntVar(&maxVisited, "max-visited", 0, "A* visited-state budget (0 = unbounded)")
	cmd.Flags().BoolVar(&protein, "protein", false, "treat input as amino-acid sequences")
	return cmd
}

// writeOutput routes an exporter to stdout when path is empty, to a file
// otherwise.
func writeOutput(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}
	return writeFile(path, fn)
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ioformats.ErrIO, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ioformats.ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ioformats.ErrIO, path, err)
	}
	return nil
}
