package board

import (
	"github.com/b-lovro/TriglavTactician/attacks"
	"github.com/b-lovro/TriglavTactician/bitutil"
)

// GenerateMoves fills list with every pseudo-legal move for the side to
// move. Legality — whether the move leaves the mover's own king in
// check — is the responsibility of Make, not this function.
func (b *Board) GenerateMoves(list *MoveList) {
	list.Reset()
	if b.side == White {
		b.generatePawnMoves(list, White)
		b.generateKingMoves(list, White)
	} else {
		b.generatePawnMoves(list, Black)
		b.generateKingMoves(list, Black)
	}
	b.generateLeaperMoves(list, b.side, WhiteKnight, attacks.KnightAttacks)
	b.generateSliderMoves(list, b.side, WhiteBishop, attacks.BishopAttacks)
	b.generateSliderMoves(list, b.side, WhiteRook, attacks.RookAttacks)
	b.generateSliderMoves(list, b.side, WhiteQueen, attacks.QueenAttacks)
}

// GenerateLegalMoves fills list with only the moves that, after Make,
// do not leave the mover's own king in check. It is more expensive than
// GenerateMoves (one Make/Restore per candidate) and is meant for
// driver-facing uses (status queries, UCI move parsing), not the hot
// search loop, which filters illegality via Make's own return value.
func (b *Board) GenerateLegalMoves(list *MoveList) {
	var pseudo MoveList
	b.GenerateMoves(&pseudo)
	list.Reset()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		snap := b.Snapshot()
		ok := b.Make(m)
		if ok {
			list.Add(m)
		}
		b.Restore(snap)
	}
}

func promoRankStart(c Color) int {
	if c == White {
		return 8 // a7..h7 -> squares 8..15
	}
	return 48 // a2..h2 -> squares 48..55
}

func onPromoRank(c Color, sq Square) bool {
	start := promoRankStart(c)
	return int(sq) >= start && int(sq) < start+8
}

func startRank(c Color) (lo, hi int) {
	if c == White {
		return 48, 55 // a2..h2
	}
	return 8, 15 // a7..h7
}

// pawnDirection returns the single-push offset. With a8=0 and h1=63,
// White advances toward decreasing square indices, Black toward
// increasing ones.
func pawnDirection(c Color) int {
	if c == White {
		return -8
	}
	return 8
}

func pawnPromotions(c Color) [4]Piece {
	if c == White {
		return [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight}
	}
	return [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight}
}

func (b *Board) generatePawnMoves(list *MoveList, c Color) {
	pawnPiece := WhitePawn
	if c == Black {
		pawnPiece = BlackPawn
	}
	bb := bitutil.Bitboard(b.pieces[pawnPiece])
	dir := pawnDirection(c)
	promos := pawnPromotions(c)
	them := c.Opposite()
	all := bitutil.Bitboard(b.occupancy[Both])

	for bb != 0 {
		from := bitutil.BitScanForward(bb)
		bb = bitutil.ClearBit(bb, from)

		to := from + dir
		if to >= 0 && to < 64 && !bitutil.TestBit(all, to) {
			if onPromoRank(c, Square(from)) {
				for _, promo := range promos {
					list.Add(EncodeMove(Square(from), Square(to), pawnPiece, promo, MoveFlags{}))
				}
			} else {
				list.Add(EncodeMove(Square(from), Square(to), pawnPiece, NoPiece, MoveFlags{}))

				lo, hi := startRank(c)
				if from >= lo && from <= hi {
					to2 := to + dir
					if !bitutil.TestBit(all, to2) {
						list.Add(EncodeMove(Square(from), Square(to2), pawnPiece, NoPiece, MoveFlags{DoublePush: true}))
					}
				}
			}
		}

		attacksBB := attacks.PawnAttacks(colorIndex(c), from) & bitutil.Bitboard(b.occupancy[them])
		for attacksBB != 0 {
			capTo := bitutil.BitScanForward(attacksBB)
			attacksBB = bitutil.ClearBit(attacksBB, capTo)
			if onPromoRank(c, Square(from)) {
				for _, promo := range promos {
					list.Add(EncodeMove(Square(from), Square(capTo), pawnPiece, promo, MoveFlags{Capture: true}))
				}
			} else {
				list.Add(EncodeMove(Square(from), Square(capTo), pawnPiece, NoPiece, MoveFlags{Capture: true}))
			}
		}

		if b.ep != NoSquare {
			epAttack := attacks.PawnAttacks(colorIndex(c), from) & bitutil.Bitboard(1<<uint(b.ep))
			if epAttack != 0 {
				list.Add(EncodeMove(Square(from), b.ep, pawnPiece, NoPiece, MoveFlags{Capture: true, EnPassant: true}))
			}
		}
	}
}

func (b *Board) generateKingMoves(list *MoveList, c Color) {
	kingPiece := WhiteKing
	if c == Black {
		kingPiece = BlackKing
	}
	bb := bitutil.Bitboard(b.pieces[kingPiece])
	own := bitutil.Bitboard(b.occupancy[c])
	their := bitutil.Bitboard(b.occupancy[c.Opposite()])

	for bb != 0 {
		from := bitutil.BitScanForward(bb)
		bb = bitutil.ClearBit(bb, from)

		targets := attacks.KingAttacks(from) &^ own
		for targets != 0 {
			to := bitutil.BitScanForward(targets)
			targets = bitutil.ClearBit(targets, to)
			capture := bitutil.TestBit(their, to)
			list.Add(EncodeMove(Square(from), Square(to), kingPiece, NoPiece, MoveFlags{Capture: capture}))
		}
	}

	b.generateCastlingMoves(list, c)
}

// generateCastlingMoves checks only the king's home square and the
// single square it crosses for attacks — never the destination square,
// which Make's post-move legality check covers. The move is encoded
// conventionally, with the king's own home square as source and its
// destination as target.
func (b *Board) generateCastlingMoves(list *MoveList, c Color) {
	occ := bitutil.Bitboard(b.occupancy[Both])
	them := c.Opposite()

	if c == White {
		kingSq, f1, g1 := Square(60), Square(61), Square(62)
		if b.castling&CastleWhiteKingside != 0 {
			if !bitutil.TestBit(occ, int(f1)) && !bitutil.TestBit(occ, int(g1)) {
				if !b.IsAttacked(kingSq, them) && !b.IsAttacked(f1, them) {
					list.Add(EncodeMove(kingSq, g1, WhiteKing, NoPiece, MoveFlags{Castling: true}))
				}
			}
		}
		b1, c1, d1 := Square(57), Square(58), Square(59)
		if b.castling&CastleWhiteQueenside != 0 {
			if !bitutil.TestBit(occ, int(b1)) && !bitutil.TestBit(occ, int(c1)) && !bitutil.TestBit(occ, int(d1)) {
				if !b.IsAttacked(kingSq, them) && !b.IsAttacked(d1, them) {
					list.Add(EncodeMove(kingSq, c1, WhiteKing, NoPiece, MoveFlags{Castling: true}))
				}
			}
		}
	} else {
		kingSq, f8, g8 := Square(4), Square(5), Square(6)
		if b.castling&CastleBlackKingside != 0 {
			if !bitutil.TestBit(occ, int(f8)) && !bitutil.TestBit(occ, int(g8)) {
				if !b.IsAttacked(kingSq, them) && !b.IsAttacked(f8, them) {
					list.Add(EncodeMove(kingSq, g8, BlackKing, NoPiece, MoveFlags{Castling: true}))
				}
			}
		}
		b8, c8, d8 := Square(1), Square(2), Square(3)
		if b.castling&CastleBlackQueenside != 0 {
			if !bitutil.TestBit(occ, int(b8)) && !bitutil.TestBit(occ, int(c8)) && !bitutil.TestBit(occ, int(d8)) {
				if !b.IsAttacked(kingSq, them) && !b.IsAttacked(d8, them) {
					list.Add(EncodeMove(kingSq, c8, BlackKing, NoPiece, MoveFlags{Castling: true}))
				}
			}
		}
	}
}

// generateLeaperMoves handles knights (the only non-king leaper).
func (b *Board) generateLeaperMoves(list *MoveList, c Color, whitePiece Piece, attackFn func(int) bitutil.Bitboard) {
	piece := whitePiece
	if c == Black {
		piece = whitePiece + 6
	}
	bb := bitutil.Bitboard(b.pieces[piece])
	own := bitutil.Bitboard(b.occupancy[c])
	their := bitutil.Bitboard(b.occupancy[c.Opposite()])

	for bb != 0 {
		from := bitutil.BitScanForward(bb)
		bb = bitutil.ClearBit(bb, from)

		targets := attackFn(from) &^ own
		for targets != 0 {
			to := bitutil.BitScanForward(targets)
			targets = bitutil.ClearBit(targets, to)
			capture := bitutil.TestBit(their, to)
			list.Add(EncodeMove(Square(from), Square(to), piece, NoPiece, MoveFlags{Capture: capture}))
		}
	}
}

// generateSliderMoves handles bishops, rooks, and queens.
func (b *Board) generateSliderMoves(list *MoveList, c Color, whitePiece Piece, attackFn func(int, bitutil.Bitboard) bitutil.Bitboard) {
	piece := whitePiece
	if c == Black {
		piece = whitePiece + 6
	}
	bb := bitutil.Bitboard(b.pieces[piece])
	own := bitutil.Bitboard(b.occupancy[c])
	their := bitutil.Bitboard(b.occupancy[c.Opposite()])
	all := bitutil.Bitboard(b.occupancy[Both])

	for bb != 0 {
		from := bitutil.BitScanForward(bb)
		bb = bitutil.ClearBit(bb, from)

		targets := attackFn(from, all) &^ own
		for targets != 0 {
			to := bitutil.BitScanForward(targets)
			targets = bitutil.ClearBit(targets, to)
			capture := bitutil.TestBit(their, to)
			list.Add(EncodeMove(Square(from), Square(to), piece, NoPiece, MoveFlags{Capture: capture}))
		}
	}
}
