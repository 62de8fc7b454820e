// Package search implements iterative-deepening negamax with
// alpha-beta pruning, quiescence search, and the killer/history move
// ordering heuristics. Per-search state (ply, nodes, killer/history/PV
// tables) lives on a *Context passed by reference rather than as
// package-level globals, so concurrent or repeated searches never
// share mutable state.
package search

import "github.com/b-lovro/TriglavTactician/board"

// MaxPly bounds the killer/history/PV tables. Quiescence search can run
// deeper than the nominal search depth, so this is generously larger
// than any max_depth a driver is expected to request.
const MaxPly = 128

// mateScore is the base magnitude assigned to a forced mate, biased by
// ply so that shorter mates sort ahead of longer ones: the mated side
// scores -mateScore+ply, so the side delivering mate sees mateScore-ply,
// highest for the soonest mate.
const mateScore = 49000

// Context holds everything one search call needs that must not leak
// between unrelated searches: node counters, the killer/history
// ordering tables, and the principal-variation table. A fresh Context
// is created per call to Search.
type Context struct {
	ply   int
	nodes uint64

	killer  [2][MaxPly]board.Move
	history [board.NumPieces][64]int

	pvLength [MaxPly]int
	pvTable  [MaxPly][MaxPly]board.Move

	tc       *TimeControl
	timedOut bool
}

// NewContext returns a zeroed Context ready for one search call.
func NewContext(tc *TimeControl) *Context {
	ctx := &Context{tc: tc}
	for p := range ctx.killer[0] {
		ctx.killer[0][p] = board.NoMove
		ctx.killer[1][p] = board.NoMove
	}
	return ctx
}

// Nodes reports the number of negamax/quiescence nodes visited so far.
func (c *Context) Nodes() uint64 { return c.nodes }

// PV returns the principal variation recorded at the root, as a slice
// of moves (possibly empty if the search never completed a ply).
func (c *Context) PV() []board.Move {
	n := c.pvLength[0]
	pv := make([]board.Move, n)
	copy(pv, c.pvTable[0][:n])
	return pv
}

func (c *Context) recordPVMove(ply int, m board.Move) {
	c.pvTable[ply][ply] = m
	for k := ply + 1; k < c.pvLength[ply+1]; k++ {
		c.pvTable[ply][k] = c.pvTable[ply+1][k]
	}
	c.pvLength[ply] = c.pvLength[ply+1]
}

func (c *Context) insertKiller(m board.Move, ply int) {
	if m != c.killer[0][ply] {
		c.killer[1][ply] = c.killer[0][ply]
		c.killer[0][ply] = m
	}
}
