package perft

import (
	"testing"

	"github.com/b-lovro/TriglavTactician/board"
)

func newBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b := board.New()
	if err := b.ParsePlacement(fen); err != nil {
		t.Fatalf("ParsePlacement(%q): %v", fen, err)
	}
	return b
}

func TestCountStandardStart(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	for _, c := range cases {
		b := board.NewStartpos()
		if got := Count(b, c.depth); got != c.want {
			t.Errorf("perft(startpos, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestCountKiwipete(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{3, 97862},
	}
	for _, c := range cases {
		b := newBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
		if got := Count(b, c.depth); got != c.want {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestCountEndgamePosition(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{4, 43238},
		{5, 674624},
	}
	for _, c := range cases {
		b := newBoard(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
		if got := Count(b, c.depth); got != c.want {
			t.Errorf("perft(endgame, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestCountPosition4(t *testing.T) {
	b := newBoard(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq -")
	if got := Count(b, 4); got != 422333 {
		t.Errorf("perft(position4, 4) = %d, want 422333", got)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	b := board.NewStartpos()
	report := Divide(b, 3)
	if report.Total != 8902 {
		t.Errorf("Divide total = %d, want 8902", report.Total)
	}
	var sum uint64
	for _, e := range report.Entries {
		sum += e.Nodes
	}
	if sum != report.Total {
		t.Errorf("sum of divide entries = %d, want total %d", sum, report.Total)
	}
	if len(report.Entries) != 20 {
		t.Errorf("expected 20 root moves from startpos, got %d", len(report.Entries))
	}
}
