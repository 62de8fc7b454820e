package board

import "testing"

func TestGameStatusOngoingAtStartpos(t *testing.T) {
	b := NewStartpos()
	if got := b.GameStatus(); got != StatusOngoing {
		t.Errorf("GameStatus() = %v, want StatusOngoing", got)
	}
}

func TestGameStatusCheckmate(t *testing.T) {
	b := New()
	if err := b.ParsePlacement("6k1/5ppp/8/8/8/8/5PPP/R6K w - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	m := EncodeMove(Square(56), Square(0), WhiteRook, NoPiece, MoveFlags{})
	if !b.Make(m) {
		t.Fatal("expected Ra8 to be accepted")
	}
	if got := b.GameStatus(); got != StatusCheckmate {
		t.Errorf("GameStatus() = %v, want StatusCheckmate after Ra8#", got)
	}
}

func TestHalfmoveClockCountsQuietMovesAndResetsOnPawnMove(t *testing.T) {
	b := NewStartpos()

	m, err := b.ParseUCIMove("g1f3")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if !b.Make(m) {
		t.Fatal("expected Nf3 to be accepted")
	}
	if b.HalfmoveClock() != 1 {
		t.Errorf("expected halfmove clock 1 after a quiet knight move, got %d", b.HalfmoveClock())
	}

	m2, err := b.ParseUCIMove("g8f6")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if !b.Make(m2) {
		t.Fatal("expected Nf6 to be accepted")
	}
	if b.HalfmoveClock() != 2 {
		t.Errorf("expected halfmove clock 2 after a second quiet move, got %d", b.HalfmoveClock())
	}

	m3, err := b.ParseUCIMove("e2e4")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if !b.Make(m3) {
		t.Fatal("expected e2e4 to be accepted")
	}
	if b.HalfmoveClock() != 0 {
		t.Errorf("expected a pawn move to reset the halfmove clock, got %d", b.HalfmoveClock())
	}
}

func TestGameStatusStalemate(t *testing.T) {
	b := New()
	if err := b.ParsePlacement("7k/5K2/6Q1/8/8/8/8/8 b - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if got := b.GameStatus(); got != StatusStalemate {
		t.Errorf("GameStatus() = %v, want StatusStalemate", got)
	}
}
