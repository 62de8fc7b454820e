// Package perft implements the leaf-counting correctness oracle used to
// validate the move generator. It is a thin, pure tree walk: generate,
// make, recurse, restore.
package perft

import "github.com/b-lovro/TriglavTactician/board"

// Count returns the number of leaves of the legal move tree rooted at
// b's current position, to the given depth. Depth 0 returns 1.
func Count(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list board.MoveList
	b.GenerateMoves(&list)

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		snap := b.Snapshot()
		if b.Make(list.At(i)) {
			nodes += Count(b, depth-1)
		}
		b.Restore(snap)
	}
	return nodes
}

// DivideEntry is one root move's contribution to a Divide report.
type DivideEntry struct {
	Move  string
	Nodes uint64
}

// Report is what a driver-facing perft query returns: the total leaf
// count plus the per-root-move breakdown.
type Report struct {
	Total   uint64
	Entries []DivideEntry
}

// Divide returns the per-root-move child counts plus the overall total.
func Divide(b *board.Board, depth int) Report {
	if depth < 1 {
		return Report{Total: Count(b, depth)}
	}

	var list board.MoveList
	b.GenerateMoves(&list)

	var report Report
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		snap := b.Snapshot()
		if b.Make(m) {
			n := Count(b, depth-1)
			report.Entries = append(report.Entries, DivideEntry{Move: m.String(), Nodes: n})
			report.Total += n
		}
		b.Restore(snap)
	}
	return report
}
