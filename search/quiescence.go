package search

import (
	"github.com/b-lovro/TriglavTactician/board"
	"github.com/b-lovro/TriglavTactician/eval"
)

// quiesce is a capture-only search extension past the nominal depth
// horizon, stabilizing the evaluation before negamax trusts it.
func (c *Context) quiesce(b *board.Board, alpha, beta int) int {
	c.nodes++
	if c.tc.poll() {
		c.timedOut = true
		return alpha
	}

	standPat := eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	alpha = Max(alpha, standPat)

	var list board.MoveList
	b.GenerateMoves(&list)
	c.orderMoves(b, &list)

	for i := 0; i < list.Len(); i++ {
		if c.tc.poll() {
			c.timedOut = true
			break
		}

		m := list.At(i)
		if !m.IsCapture() {
			continue
		}

		snap := b.Snapshot()
		if !b.Make(m) {
			b.Restore(snap)
			continue
		}
		score := -c.quiesce(b, -beta, -alpha)
		b.Restore(snap)

		if c.timedOut {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
