package eval

import (
	"testing"

	"github.com/b-lovro/TriglavTactician/board"
)

func TestEvaluateStartposIsSymmetric(t *testing.T) {
	b := board.NewStartpos()
	if got := Evaluate(b); got != 0 {
		t.Errorf("expected a symmetric startpos to evaluate to 0, got %d", got)
	}
}

func TestEvaluateSignFlipsWithSideToMove(t *testing.T) {
	b := board.New()
	if err := b.ParsePlacement("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	before := Evaluate(b)

	flipped := board.New()
	if err := flipped.ParsePlacement("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	after := Evaluate(flipped)

	if after != -before {
		t.Errorf("evaluate(flip(P)) = %d, want %d (= -evaluate(P))", after, -before)
	}
}

func TestEvaluateQueenIsMaterialOnly(t *testing.T) {
	// Two white queens, bare kings: every queen square contributes only
	// material, so the total must be exactly 2*queenValue plus the
	// king-vs-king PST terms, which are identical on both sides.
	b := board.New()
	if err := b.ParsePlacement("4k3/8/8/Q7/7Q/8/8/4K3 w - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	bareKings := board.New()
	if err := bareKings.ParsePlacement("4k3/8/8/8/8/8/8/4K3 w - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	if got, want := Evaluate(b)-Evaluate(bareKings), 2*queenValue; got != want {
		t.Errorf("expected adding two queens to change the score by exactly %d, got %d", want, got)
	}
}
