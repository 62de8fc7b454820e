package board

import (
	"github.com/b-lovro/TriglavTactician/attacks"
	"github.com/b-lovro/TriglavTactician/bitutil"
)

func init() {
	attacks.Init()
}

// colorIndex maps a Color to the 0/1 index the attacks package's pawn
// table uses.
func colorIndex(c Color) int {
	if c == Black {
		return 1
	}
	return 0
}

// IsAttacked reports whether any piece of byColor attacks sq.
func (b *Board) IsAttacked(sq Square, byColor Color) bool {
	all := bitutil.Bitboard(b.occupancy[Both])
	s := int(sq)

	pawnPiece := WhitePawn
	knightPiece := WhiteKnight
	bishopPiece := WhiteBishop
	rookPiece := WhiteRook
	queenPiece := WhiteQueen
	kingPiece := WhiteKing
	if byColor == Black {
		pawnPiece = BlackPawn
		knightPiece = BlackKnight
		bishopPiece = BlackBishop
		rookPiece = BlackRook
		queenPiece = BlackQueen
		kingPiece = BlackKing
	}

	// Pawn attacks on sq come from the opposite direction a pawn of
	// byColor would attack, so we look up attacks.PawnAttacks using the
	// opposite color's attack table anchored at sq, then intersect with
	// byColor's actual pawns.
	if attacks.PawnAttacks(colorIndex(byColor.Opposite()), s)&bitutil.Bitboard(b.pieces[pawnPiece]) != 0 {
		return true
	}
	if attacks.KnightAttacks(s)&bitutil.Bitboard(b.pieces[knightPiece]) != 0 {
		return true
	}
	if attacks.BishopAttacks(s, all)&bitutil.Bitboard(b.pieces[bishopPiece]) != 0 {
		return true
	}
	if attacks.RookAttacks(s, all)&bitutil.Bitboard(b.pieces[rookPiece]) != 0 {
		return true
	}
	if attacks.QueenAttacks(s, all)&bitutil.Bitboard(b.pieces[queenPiece]) != 0 {
		return true
	}
	if attacks.KingAttacks(s)&bitutil.Bitboard(b.pieces[kingPiece]) != 0 {
		return true
	}
	return false
}

// InCheck reports whether color c's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return b.IsAttacked(ksq, c.Opposite())
}
