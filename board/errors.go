package board

import "fmt"

// errInvalidSquare reports a malformed algebraic square name.
func errInvalidSquare(s string) error {
	return fmt.Errorf("board: invalid square %q", s)
}

// errInvalidFEN reports a malformed FEN-like record, with a short
// reason describing which field failed.
func errInvalidFEN(reason string) error {
	return fmt.Errorf("board: invalid FEN: %s", reason)
}

// errInvalidMoveText reports a malformed UCI-style move string
// (e.g. not exactly "e2e4" or "e7e8q").
func errInvalidMoveText(s string) error {
	return fmt.Errorf("board: invalid move text %q", s)
}

// errMoveNotFound reports that a requested move does not match any
// legal move in the current position.
func errMoveNotFound(s string) error {
	return fmt.Errorf("board: move %q is not legal in this position", s)
}
