package search

import "github.com/b-lovro/TriglavTactician/board"

// negamax is alpha-beta search with a check extension, killer/history
// move ordering, and a quiescence search at the leaves.
func (c *Context) negamax(b *board.Board, alpha, beta, depth int) int {
	c.pvLength[c.ply] = c.ply

	if depth == 0 {
		return c.quiesce(b, alpha, beta)
	}

	c.nodes++
	if c.tc.poll() {
		c.timedOut = true
		return alpha
	}

	mover := b.SideToMove()
	if b.InCheck(mover) {
		depth++
	}

	var list board.MoveList
	b.GenerateMoves(&list)
	c.orderMoves(b, &list)

	legalMoves := 0
	for i := 0; i < list.Len(); i++ {
		if c.tc.poll() {
			c.timedOut = true
			break
		}

		m := list.At(i)

		snap := b.Snapshot()
		c.ply++
		if !b.Make(m) {
			c.ply--
			b.Restore(snap)
			continue
		}
		legalMoves++

		score := -c.negamax(b, -beta, -alpha, depth-1)
		b.Restore(snap)
		c.ply--

		if c.timedOut {
			return alpha
		}

		if score >= beta {
			if !m.IsCapture() {
				c.insertKiller(m, c.ply)
			}
			return beta
		}
		if score > alpha {
			if !m.IsCapture() {
				c.history[m.Piece()][m.Target()] += depth
			}
			alpha = score
			c.recordPVMove(c.ply, m)
		}
	}

	if c.timedOut {
		return alpha
	}

	if legalMoves == 0 {
		if b.InCheck(mover) {
			return -mateScore + c.ply
		}
		return 0
	}

	return alpha
}
