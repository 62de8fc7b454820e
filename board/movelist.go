package board

// MaxMoves is the fixed capacity of a MoveList. No legal chess position
// is known to produce anywhere near this many pseudo-legal moves; it
// exists as a hard ceiling, not an expected working size.
const MaxMoves = 256

// MoveList is a fixed-capacity buffer of moves filled in by the move
// generator. It is cheap to allocate on the stack inside a search
// frame, avoiding a heap allocation per node.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.count }

// At returns the move at index i.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Set overwrites the move at index i (used by in-place sorts).
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.count = 0 }

// Add appends m to the list. It panics on overflow, since overflowing
// the 256-slot buffer for any legal chess position indicates a bug in
// the move generator, not a condition a caller can recover from.
func (l *MoveList) Add(m Move) {
	if l.count >= MaxMoves {
		panic("board: move list overflow")
	}
	l.moves[l.count] = m
	l.count++
}

// String renders every move in the list space-separated, for test
// diagnostics.
func (l *MoveList) String() string {
	s := ""
	for i := 0; i < l.count; i++ {
		if i > 0 {
			s += " "
		}
		s += l.moves[i].String()
	}
	return s
}
