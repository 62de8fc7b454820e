package board

// Piece identifies one of the twelve piece types, partitioned by color:
// the first six values are White's, the next six Black's.
type Piece int

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	// NoPiece marks the absence of a piece (an unrecognized FEN
	// character, an empty square, a move with no promotion); it never
	// indexes a piece bitboard.
	NoPiece Piece = -1
)

// NumPieces is the size of the piece bitboard array.
const NumPieces = 12

// Color reports the side that owns p. p must be a real piece (not NoPiece).
func (p Piece) Color() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

// pieceChars maps each Piece to its FEN character, in declaration order.
var pieceChars = [NumPieces]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// Char returns the FEN character for p.
func (p Piece) Char() byte {
	if p < 0 || int(p) >= NumPieces {
		return '?'
	}
	return pieceChars[p]
}

// pieceFromChar converts a FEN character to its Piece, or NoPiece if ch
// is not a recognized piece letter.
func pieceFromChar(ch byte) Piece {
	for i, c := range pieceChars {
		if c == ch {
			return Piece(i)
		}
	}
	return NoPiece
}

// Color is one of White, Black, or the pseudo-color Both naming the
// union occupancy bitboard.
type Color int

const (
	White Color = iota
	Black
	Both
)

// Opposite returns the other playing side. Opposite is undefined for Both.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PromotionPieceType is the colorless family used when generating or
// parsing a promotion: queen, rook, bishop, knight.
type PromotionPieceType int

const (
	PromoNone PromotionPieceType = iota
	PromoQueen
	PromoRook
	PromoBishop
	PromoKnight
)

// promoChar returns the lowercase algebraic letter for a promotion
// piece type, or 0 if none.
func promoChar(pt PromotionPieceType) byte {
	switch pt {
	case PromoQueen:
		return 'q'
	case PromoRook:
		return 'r'
	case PromoBishop:
		return 'b'
	case PromoKnight:
		return 'n'
	default:
		return 0
	}
}

func promoTypeFromChar(ch byte) PromotionPieceType {
	switch ch {
	case 'q', 'Q':
		return PromoQueen
	case 'r', 'R':
		return PromoRook
	case 'b', 'B':
		return PromoBishop
	case 'n', 'N':
		return PromoKnight
	default:
		return PromoNone
	}
}

// promotedPiece returns the concrete Piece for promoting a pawn of
// color c to family pt, or NoPiece if pt is PromoNone.
func promotedPiece(c Color, pt PromotionPieceType) Piece {
	switch c {
	case White:
		switch pt {
		case PromoQueen:
			return WhiteQueen
		case PromoRook:
			return WhiteRook
		case PromoBishop:
			return WhiteBishop
		case PromoKnight:
			return WhiteKnight
		}
	case Black:
		switch pt {
		case PromoQueen:
			return BlackQueen
		case PromoRook:
			return BlackRook
		case PromoBishop:
			return BlackBishop
		case PromoKnight:
			return BlackKnight
		}
	}
	return NoPiece
}
