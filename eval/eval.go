// Package eval implements a material-plus-piece-square-table static
// evaluator: a single untapered table per piece, no midgame/endgame
// interpolation.
package eval

import (
	"github.com/b-lovro/TriglavTactician/bitutil"
	"github.com/b-lovro/TriglavTactician/board"
)

// Material values, centipawns. Queens have no piece-square entry —
// their value is material only.
const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 330
	rookValue   = 500
	queenValue  = 900
	kingValue   = 0
)

var materialValue = [6]int{pawnValue, knightValue, bishopValue, rookValue, queenValue, kingValue}

// Piece-square tables are indexed by white piece type (Pawn..King
// minus Queen, which has no entry and is skipped at lookup time) and
// square, with square 0 = a8 per this module's convention, so rank 8
// is each table's first row.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	57, 54, 55, 54, 46, 32, 4, 9,
	-33, -6, 7, 13, 27, 57, 19, -11,
	-36, -27, -27, -11, 1, 2, -4, -21,
	-46, -40, -33, -33, -23, -26, -15, -30,
	-51, -52, -45, -45, -37, -37, -20, -30,
	-46, -41, -42, -39, -40, -12, 1, -21,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-61, -6, -12, -2, 1, -6, -1, -16,
	-17, -12, 20, 33, 33, 37, -8, 3,
	-21, 12, 40, 49, 67, 64, 37, 14,
	-5, 8, 30, 35, 24, 43, 19, 22,
	-14, -1, 8, 5, 13, 10, 26, -1,
	-25, -8, -4, 6, 7, -1, -1, -17,
	-35, -32, -18, -10, -14, -12, -20, -18,
	-24, -28, -46, -30, -25, -21, -27, -40,
}

var bishopPST = [64]int{
	-27, -8, -13, -12, -8, -21, 1, -10,
	-22, 6, 3, -7, 4, 14, -3, 8,
	4, 18, 36, 36, 47, 55, 37, 24,
	-4, 22, 24, 49, 34, 37, 20, 6,
	-7, 10, 15, 21, 26, 11, 10, 7,
	-2, 11, 8, 13, 10, 8, 10, 13,
	4, 8, 11, -2, 1, 5, 20, 11,
	4, -2, -15, -21, -18, -8, -8, 2,
}

var rookPST = [64]int{
	23, 22, 19, 24, 23, 20, 21, 34,
	-3, -5, 16, 28, 31, 37, 9, 30,
	-22, 10, 4, 25, 41, 38, 44, 20,
	-33, -21, -11, 6, 0, 7, 8, 2,
	-49, -45, -43, -35, -37, -34, -13, -29,
	-60, -46, -50, -44, -47, -48, -21, -38,
	-71, -45, -44, -43, -47, -37, -25, -51,
	-46, -41, -37, -34, -36, -40, -19, -42,
}

var kingPST = [64]int{
	-1, 0, 0, 2, 0, 0, 0, -2,
	-2, 6, 6, 2, 3, 4, 3, -2,
	1, 11, 12, 9, 8, 14, 12, 0,
	0, 9, 16, 10, 13, 15, 15, -8,
	-1, 8, 16, 10, 15, 12, 23, -9,
	-6, -4, -3, -11, -6, -8, 4, -15,
	12, 0, -18, -53, -33, -39, 7, 25,
	-4, 36, -1, -69, -23, -74, 19, 26,
}

// pst looks up the piece-square bonus for a white piece type at sq;
// queens (index board.WhiteQueen-board.WhitePawn == 4) have no table
// and return 0.
func pst(whitePieceIdx int, sq int) int {
	switch whitePieceIdx {
	case 0:
		return pawnPST[sq]
	case 1:
		return knightPST[sq]
	case 2:
		return bishopPST[sq]
	case 3:
		return rookPST[sq]
	case 5:
		return kingPST[sq]
	default:
		return 0
	}
}

// mirror flips a square vertically for black's piece-square lookup.
func mirror(sq int) int {
	return sq ^ 56
}

// Evaluate returns the static score of b from the perspective of the
// side to move: sum white's material+PST, subtract black's
// material+mirrored-PST, negate if black is to move.
func Evaluate(b *board.Board) int {
	score := 0
	for whiteIdx := 0; whiteIdx < 6; whiteIdx++ {
		wp := board.Piece(whiteIdx)
		bp := board.Piece(whiteIdx + 6)

		wbb := bitutil.Bitboard(b.PieceBitboard(wp))
		for wbb != 0 {
			sq := bitutil.BitScanForward(wbb)
			wbb = bitutil.ClearBit(wbb, sq)
			score += materialValue[whiteIdx] + pst(whiteIdx, sq)
		}

		bbb := bitutil.Bitboard(b.PieceBitboard(bp))
		for bbb != 0 {
			sq := bitutil.BitScanForward(bbb)
			bbb = bitutil.ClearBit(bbb, sq)
			score -= materialValue[whiteIdx] + pst(whiteIdx, mirror(sq))
		}
	}

	if b.SideToMove() == board.Black {
		score = -score
	}
	return score
}
