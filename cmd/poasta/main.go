// Command poasta aligns FASTA sequences into a partial-order alignment
// graph and exports the result as GFA, DOT, an MSA FASTA, or per-query
// GAF records.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("poasta: ")
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
