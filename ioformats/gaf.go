package ioformats

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/hts/sam"

	"github.com/poasta-go/poasta/align"
	"github.com/poasta-go/poasta/poagraph"
)

// WriteGAF emits one GAF record for a query aligned against g: the
// oriented segment path, the path interval it covers, and an extended
// (`=`/`X`/`I`/`D`) CIGAR in the cg:Z: tag.
func WriteGAF(w io.Writer, g *poagraph.Graph, queryName string, query []byte, aln align.Alignment) error {
	return WriteGAFNamed(w, g, queryName, query, aln, DefaultSegmentName)
}

// WriteGAFNamed is WriteGAF with a custom segment namer.
func WriteGAFNamed(w io.Writer, g *poagraph.Graph, queryName string, query []byte, aln align.Alignment, name SegmentNamer) error {
	bw := bufio.NewWriter(w)

	var path strings.Builder
	pathLen := 0
	qStart, qEnd := -1, 0
	matches := 0
	for _, p := range aln {
		if p.HasRef {
			path.WriteByte('>')
			path.WriteString(name(p.Ref))
			pathLen++
		}
		if p.HasQuery {
			if qStart < 0 {
				qStart = p.Query
			}
			qEnd = p.Query + 1
		}
		if p.IsAligned() && g.GetSymbolChar(p.Ref) == query[p.Query] {
			matches++
		}
	}
	if qStart < 0 {
		qStart = 0
	}

	cigar := extendedCigar(g, query, aln)

	// Column layout follows the GAF spec: query, strand, path, residue
	// and block counts, mapping quality, then tags.
	_, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t+\t%s\t%d\t%d\t%d\t%d\t%d\t%d\tcg:Z:%s\n",
		queryName, len(query), qStart, qEnd,
		path.String(), pathLen, 0, pathLen,
		matches, len(aln), 255, cigar)
	if err != nil {
		return err
	}
	return bw.Flush()
}

// extendedCigar run-length-encodes the alignment columns into the
// `=`/`X`/`I`/`D` operator set, reusing the sam package's CIGAR types for
// the rendering.
func extendedCigar(g *poagraph.Graph, query []byte, aln align.Alignment) sam.Cigar {
	var ops sam.Cigar
	push := func(t sam.CigarOpType) {
		if n := len(ops); n > 0 && ops[n-1].Type() == t {
			ops[n-1] = sam.NewCigarOp(t, ops[n-1].Len()+1)
			return
		}
		ops = append(ops, sam.NewCigarOp(t, 1))
	}

	for _, p := range aln {
		switch {
		case p.IsAligned() && g.GetSymbolChar(p.Ref) == query[p.Query]:
			push(sam.CigarEqual)
		case p.IsAligned():
			push(sam.CigarMismatch)
		case p.IsInsertion():
			push(sam.CigarInsertion)
		default:
			push(sam.CigarDeletion)
		}
	}
	return ops
}
