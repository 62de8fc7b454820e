package board

import "strings"

// StartFEN is the FEN-like record for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

// ParsePlacement resets the board, then reads a FEN-like record: piece
// placement, side to move, castling rights, and en-passant square,
// separated by single spaces. Further fields (halfmove clock, fullmove
// number) are tolerated and ignored.
func (b *Board) ParsePlacement(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return errInvalidFEN("expected at least 4 space-separated fields")
	}

	b.Reset()

	if err := b.parsePlacementField(fields[0]); err != nil {
		return err
	}
	if err := b.parseSideField(fields[1]); err != nil {
		return err
	}
	if err := b.parseCastlingField(fields[2]); err != nil {
		return err
	}
	if err := b.parseEnPassantField(fields[3]); err != nil {
		return err
	}

	b.rebuildOccupancy()
	return nil
}

func (b *Board) parsePlacementField(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return errInvalidFEN("piece placement must have 8 ranks")
	}

	for rankIdx, rankStr := range ranks {
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return errInvalidFEN("too many squares in a rank")
			}
			p := pieceFromChar(ch)
			if p == NoPiece {
				return errInvalidFEN("unrecognized piece character")
			}
			sq := rankIdx*8 + file
			b.pieces[p] |= 1 << uint(sq)
			file++
		}
		if file != 8 {
			return errInvalidFEN("rank does not sum to 8 files")
		}
	}
	return nil
}

func (b *Board) parseSideField(side string) error {
	switch side {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return errInvalidFEN("side to move must be 'w' or 'b'")
	}
	return nil
}

func (b *Board) parseCastlingField(castling string) error {
	if castling == "-" {
		b.castling = 0
		return nil
	}
	for _, ch := range []byte(castling) {
		switch ch {
		case 'K':
			b.castling |= CastleWhiteKingside
		case 'Q':
			b.castling |= CastleWhiteQueenside
		case 'k':
			b.castling |= CastleBlackKingside
		case 'q':
			b.castling |= CastleBlackQueenside
		default:
			return errInvalidFEN("castling field must be a subset of KQkq or '-'")
		}
	}
	return nil
}

func (b *Board) parseEnPassantField(ep string) error {
	if ep == "-" {
		b.ep = NoSquare
		return nil
	}
	sq, err := squareFromName(ep)
	if err != nil {
		return errInvalidFEN("en-passant field is not a valid square")
	}
	b.ep = sq
	return nil
}

// ToFEN renders the board back to a FEN-like record (placement, side,
// castling, en-passant), the inverse of ParsePlacement.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			p := b.PieceAt(Square(sq))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&CastleWhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castling&CastleWhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&CastleBlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castling&CastleBlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.ep.String())

	return sb.String()
}

// ParseUCIMove parses a move string in origin-destination form
// (e.g. "e2e4", with an optional trailing promotion letter "q|r|b|n")
// and resolves it against the board's legal moves. Returns NoMove and
// an error if the text is malformed or does not match a legal move.
func (b *Board) ParseUCIMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, errInvalidMoveText(s)
	}
	from, err := squareFromName(s[0:2])
	if err != nil {
		return NoMove, errInvalidMoveText(s)
	}
	to, err := squareFromName(s[2:4])
	if err != nil {
		return NoMove, errInvalidMoveText(s)
	}
	wantPromo := PromoNone
	if len(s) == 5 {
		wantPromo = promoTypeFromChar(s[4])
		if wantPromo == PromoNone {
			return NoMove, errInvalidMoveText(s)
		}
	}

	var list MoveList
	b.GenerateLegalMoves(&list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Source() != from || m.Target() != to {
			continue
		}
		if wantPromo == PromoNone && !m.IsPromotion() {
			return m, nil
		}
		if wantPromo != PromoNone && m.IsPromotion() && m.PromotedPiece() == promotedPiece(b.side, wantPromo) {
			return m, nil
		}
	}
	return NoMove, errMoveNotFound(s)
}
