package search

import (
	"testing"

	"github.com/b-lovro/TriglavTactician/board"
)

func TestSearchDepthOneFromStartposPicksALegalMove(t *testing.T) {
	b := board.NewStartpos()
	tc := NewTimeControl(Limits{})
	res := Search(b, 1, tc, nil)

	var legal board.MoveList
	b.GenerateLegalMoves(&legal)
	found := false
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == res.BestMove {
			found = true
		}
	}
	if !found {
		t.Errorf("bestmove %s is not among the 20 legal startpos moves", res.BestMove.String())
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	b := board.New()
	if err := b.ParsePlacement("6k1/5ppp/8/8/8/8/5PPP/R6K w - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	tc := NewTimeControl(Limits{})
	res := Search(b, 3, tc, nil)

	if !b.Make(res.BestMove) {
		t.Fatalf("expected bestmove %s to be legal", res.BestMove.String())
	}
	if !b.InCheck(board.Black) {
		t.Errorf("expected %s to deliver check", res.BestMove.String())
	}
	var reply board.MoveList
	b.GenerateLegalMoves(&reply)
	if reply.Len() != 0 {
		t.Errorf("expected zero legal replies after %s, got %d", res.BestMove.String(), reply.Len())
	}
}

func TestSearchObservesStalemateAsZeroLegalMoves(t *testing.T) {
	// Classic stalemate: black king cornered on h8 by White's king on f7
	// and queen on g6, covering g8/g7/h7 without ever checking h8 itself.
	b := board.New()
	if err := b.ParsePlacement("7k/5K2/6Q1/8/8/8/8/8 b - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if b.InCheck(board.Black) {
		t.Fatal("test position must not be check")
	}
	var legal board.MoveList
	b.GenerateLegalMoves(&legal)
	if legal.Len() != 0 {
		t.Fatalf("expected a stalemate position with zero legal moves, got %d", legal.Len())
	}
}
