package board

// Square identifies one of the 64 board squares. Index 0 is a8, index 7
// is h8, index 56 is a1, index 63 is h1 — rank-major, top-down.
type Square int

// NoSquare is the sentinel for "no square", distinct from every valid
// Square value.
const NoSquare Square = -1

// File returns the 0-based file (0 = a, 7 = h) of sq.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the 0-based rank counting down from the top of the
// board (0 = rank 8, 7 = rank 1) — matches the square-index convention.
func (sq Square) Rank() int { return int(sq) / 8 }

var fileNames = "abcdefgh"

// String renders sq in algebraic notation (e.g. "e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	rankChar := byte('8' - sq.Rank())
	return string([]byte{fileNames[sq.File()], rankChar})
}

// squareFromName parses algebraic notation ("e4") into a Square, or
// returns an error if s is not a well-formed square name.
func squareFromName(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errInvalidSquare(s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errInvalidSquare(s)
	}
	f := int(file - 'a')
	r := int('8' - rank)
	return Square(r*8 + f), nil
}
