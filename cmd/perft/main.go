// Command perft is a standalone move-generator correctness harness: it
// counts leaves of the legal move tree to a fixed depth and optionally
// prints the per-root-move breakdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/b-lovro/TriglavTactician/board"
	"github.com/b-lovro/TriglavTactician/perft"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN-like record (defaults to the standard starting array)")
	depth := flag.Int("depth", 0, "perft depth (required, > 0)")
	divide := flag.Bool("divide", false, "print per-root-move child counts before the total")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b := board.New()
	if err := b.ParsePlacement(*fen); err != nil {
		fmt.Fprintf(os.Stderr, "parsing -fen: %v\n", err)
		os.Exit(2)
	}

	start := time.Now()

	if *divide {
		report := perft.Divide(b, *depth)
		sort.Slice(report.Entries, func(i, j int) bool { return report.Entries[i].Move < report.Entries[j].Move })
		for _, e := range report.Entries {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
		}
		fmt.Printf("Total: %d\n", report.Total)
		return
	}

	nodes := perft.Count(b, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("depth %d: %d nodes in %s (%.0f nps)\n", *depth, nodes, elapsed, nps)
}
