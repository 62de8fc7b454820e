package board

// castlingRightsMask is keyed by both a move's source and target
// square; ANDing castling rights with the mask at each clears the
// rights invalidated by a king or rook moving off, or being captured
// on, its home square. The table's first row covers rank 8, matching
// this module's a8=0..h1=63 square convention.
var castlingRightsMask = [64]CastlingRights{
	7, 15, 15, 15, 3, 15, 15, 11,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	13, 15, 15, 15, 12, 15, 15, 14,
}

// Make applies m to the board and reports whether it was accepted. The
// move is fully applied (including castling rook movement, captures,
// promotions, and en-passant), then the mover's own king is checked;
// if it is attacked the board is restored from snapshot and Make
// returns false. The caller is expected to have taken its own Snapshot
// beforehand if it needs to Restore regardless of the outcome (Make
// restores internally only on rejection).
func (b *Board) Make(m Move) bool {
	snap := b.Snapshot()

	src := m.Source()
	dst := m.Target()
	piece := m.Piece()
	mover := b.side

	// 1 (snapshot taken above) + 2: move the piece.
	b.pieces[piece] &^= 1 << uint(src)
	b.pieces[piece] |= 1 << uint(dst)

	// 3: remove a captured piece (ordinary captures only; en passant
	// is handled separately in step 5 since the captured pawn is not
	// on the target square).
	if m.IsCapture() && !m.IsEnPassant() {
		enemy := mover.Opposite()
		mask := uint64(1) << uint(dst)
		for p := enemyPieceRangeStart(enemy); p <= enemyPieceRangeEnd(enemy); p++ {
			if b.pieces[p]&mask != 0 {
				b.pieces[p] &^= mask
				break
			}
		}
	}

	// 4: promotion — remove the pawn from target, add the promoted piece.
	if m.IsPromotion() {
		b.pieces[piece] &^= 1 << uint(dst)
		b.pieces[m.PromotedPiece()] |= 1 << uint(dst)
	}

	// 5: en passant — remove the enemy pawn behind the target.
	if m.IsEnPassant() {
		var capSq Square
		var capPiece Piece
		if mover == White {
			capSq = dst + 8
			capPiece = BlackPawn
		} else {
			capSq = dst - 8
			capPiece = WhitePawn
		}
		b.pieces[capPiece] &^= 1 << uint(capSq)
	}

	// 6: castling — move the corresponding rook.
	if m.IsCastling() {
		switch dst {
		case 62: // white king-side, g1
			b.pieces[WhiteRook] &^= 1 << 63
			b.pieces[WhiteRook] |= 1 << 61
		case 58: // white queen-side, c1
			b.pieces[WhiteRook] &^= 1 << 56
			b.pieces[WhiteRook] |= 1 << 59
		case 6: // black king-side, g8
			b.pieces[BlackRook] &^= 1 << 7
			b.pieces[BlackRook] |= 1 << 5
		case 2: // black queen-side, c8
			b.pieces[BlackRook] &^= 1 << 0
			b.pieces[BlackRook] |= 1 << 3
		}
	}

	// 7: update castling rights.
	b.castling &= castlingRightsMask[src]
	b.castling &= castlingRightsMask[dst]

	// 8: rebuild occupancy.
	b.rebuildOccupancy()

	// 9: legality check.
	if b.InCheck(mover) {
		b.Restore(snap)
		return false
	}

	// 10: en-passant square.
	if m.IsDoublePush() {
		if mover == White {
			b.ep = src - 8
		} else {
			b.ep = src + 8
		}
	} else {
		b.ep = NoSquare
	}

	// 11: flip side, increment ply.
	b.side = mover.Opposite()
	b.plyCount++

	// Halfmove clock: resets on a pawn move or any capture, otherwise
	// counts up.
	if piece == WhitePawn || piece == BlackPawn || m.IsCapture() {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	return true
}

func enemyPieceRangeStart(c Color) int {
	if c == White {
		return int(WhitePawn)
	}
	return int(BlackPawn)
}

func enemyPieceRangeEnd(c Color) int {
	if c == White {
		return int(WhiteKing)
	}
	return int(BlackKing)
}
