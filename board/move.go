package board

// Move packs a chess move into a single 32-bit integer:
//
//	bits 0-5:   source square
//	bits 6-11:  target square
//	bits 12-15: moving piece
//	bits 16-19: promoted piece, 0 if none (a pawn can never be the
//	            promoted-to piece, so zero is an unambiguous sentinel)
//	bit 20:     capture flag
//	bit 21:     double-push flag
//	bit 22:     en-passant flag
//	bit 23:     castling flag
type Move uint32

const (
	moveSrcShift   = 0
	moveDstShift   = 6
	movePieceShift = 12
	movePromoShift = 16
	moveCaptureBit = 1 << 20
	moveDoubleBit  = 1 << 21
	moveEPBit      = 1 << 22
	moveCastleBit  = 1 << 23

	sixBitMask = 0x3F
	pieceMask  = 0xF
)

// NoMove is the sentinel "no move" value returned by parsers when a
// move string does not resolve to a legal move.
const NoMove Move = 0xFFFFFFFF

// MoveFlags bundles the four boolean flags carried by a Move.
type MoveFlags struct {
	Capture    bool
	DoublePush bool
	EnPassant  bool
	Castling   bool
}

// EncodeMove packs a move's fields into a Move value.
func EncodeMove(src, dst Square, piece Piece, promoted Piece, flags MoveFlags) Move {
	m := Move(uint32(src)&sixBitMask) |
		Move(uint32(dst)&sixBitMask)<<moveDstShift |
		Move(uint32(piece)&pieceMask)<<movePieceShift

	if promoted != NoPiece {
		m |= Move(uint32(promoted)&pieceMask) << movePromoShift
	}
	if flags.Capture {
		m |= moveCaptureBit
	}
	if flags.DoublePush {
		m |= moveDoubleBit
	}
	if flags.EnPassant {
		m |= moveEPBit
	}
	if flags.Castling {
		m |= moveCastleBit
	}
	return m
}

// Source returns the move's source square.
func (m Move) Source() Square { return Square((uint32(m) >> moveSrcShift) & sixBitMask) }

// Target returns the move's target square.
func (m Move) Target() Square { return Square((uint32(m) >> moveDstShift) & sixBitMask) }

// Piece returns the piece making the move.
func (m Move) Piece() Piece { return Piece((uint32(m) >> movePieceShift) & pieceMask) }

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool { return (uint32(m)>>movePromoShift)&pieceMask != 0 }

// PromotedPiece returns the promoted-to piece, or NoPiece if this move
// is not a promotion.
func (m Move) PromotedPiece() Piece {
	field := (uint32(m) >> movePromoShift) & pieceMask
	if field == 0 {
		return NoPiece
	}
	return Piece(field)
}

// IsCapture reports the capture flag (true for en-passant captures too).
func (m Move) IsCapture() bool { return uint32(m)&moveCaptureBit != 0 }

// IsDoublePush reports the double-pawn-push flag.
func (m Move) IsDoublePush() bool { return uint32(m)&moveDoubleBit != 0 }

// IsEnPassant reports the en-passant-capture flag.
func (m Move) IsEnPassant() bool { return uint32(m)&moveEPBit != 0 }

// IsCastling reports the castling flag.
func (m Move) IsCastling() bool { return uint32(m)&moveCastleBit != 0 }

// String renders the move as <source><target>[promotion letter], the
// long-algebraic wire format used for info/bestmove lines.
func (m Move) String() string {
	if m == NoMove {
		return ""
	}
	s := m.Source().String() + m.Target().String()
	if m.IsPromotion() {
		pt := promotionTypeOf(m.PromotedPiece())
		if c := promoChar(pt); c != 0 {
			s += string(c)
		}
	}
	return s
}

// promotionTypeOf maps a concrete promoted piece back to its colorless family.
func promotionTypeOf(p Piece) PromotionPieceType {
	switch p {
	case WhiteQueen, BlackQueen:
		return PromoQueen
	case WhiteRook, BlackRook:
		return PromoRook
	case WhiteBishop, BlackBishop:
		return PromoBishop
	case WhiteKnight, BlackKnight:
		return PromoKnight
	default:
		return PromoNone
	}
}
