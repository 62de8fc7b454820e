package search

import "github.com/b-lovro/TriglavTactician/board"

// mvvLva[victim][attacker] is indexed by piece type (Pawn..King, 0..5)
// stripped of color: each victim tier gets a base ten points above
// the previous one, and within a tier the score falls as the attacker
// gets more valuable (least-valuable attacker first).
var mvvLva = [6][6]int{
	{15, 14, 13, 12, 11, 10}, // victim Pawn
	{25, 24, 23, 22, 21, 20}, // victim Knight
	{35, 34, 33, 32, 31, 30}, // victim Bishop
	{45, 44, 43, 42, 41, 40}, // victim Rook
	{55, 54, 53, 52, 51, 50}, // victim Queen
	{65, 64, 63, 62, 61, 60}, // victim King (not reachable in legal play)
}

const (
	captureBase = 10000
	killerSlot0 = 9000
	killerSlot1 = 8000
)

func pieceTypeOf(p board.Piece) int {
	t := int(p)
	if t >= 6 {
		t -= 6
	}
	return t
}

// victimTypeAt resolves the captured piece's type at a move's target
// square by scanning the enemy bitboards. En-passant captures default
// to a pawn victim, since the captured pawn is not actually on the
// target square.
func victimTypeAt(b *board.Board, m board.Move, mover board.Color) int {
	if m.IsEnPassant() {
		return pieceTypeOf(board.WhitePawn)
	}
	enemy := mover.Opposite()
	for t := board.WhitePawn; t <= board.WhiteKing; t++ {
		p := t
		if enemy == board.Black {
			p = t + 6
		}
		if b.PieceBitboard(p)&(uint64(1)<<uint(m.Target())) != 0 {
			return pieceTypeOf(p)
		}
	}
	return pieceTypeOf(board.WhitePawn)
}

// scoreMove ranks a candidate move for search ordering: captures by
// MVV-LVA above a fixed base, then killer moves, then history score.
func (c *Context) scoreMove(b *board.Board, m board.Move) int {
	if m.IsCapture() {
		attacker := pieceTypeOf(m.Piece())
		victim := victimTypeAt(b, m, b.SideToMove())
		return mvvLva[victim][attacker] + captureBase
	}
	if m == c.killer[0][c.ply] {
		return killerSlot0
	}
	if m == c.killer[1][c.ply] {
		return killerSlot1
	}
	return c.history[m.Piece()][m.Target()]
}

// orderMoves scores every move in list and selection-sorts it
// descending by score in place: pick the best remaining candidate and
// swap it to the front, one position at a time, so the caller can
// iterate the list in already-sorted order without a second pass.
func (c *Context) orderMoves(b *board.Board, list *board.MoveList) {
	n := list.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = c.scoreMove(b, list.At(i))
	}
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			mi, mb := list.At(i), list.At(best)
			list.Set(i, mb)
			list.Set(best, mi)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}
