package board

import "testing"

func TestParsePlacementStartpos(t *testing.T) {
	b := New()
	if err := b.ParsePlacement(StartFEN); err != nil {
		t.Fatalf("ParsePlacement(startpos) error: %v", err)
	}
	if b.SideToMove() != White {
		t.Errorf("expected White to move, got %v", b.SideToMove())
	}
	if got := popcountBits(b.Occupancy(Both)); got != 32 {
		t.Errorf("expected 32 pieces on the board, got %d", got)
	}
	if b.Occupancy(Both) != b.Occupancy(White)|b.Occupancy(Black) {
		t.Error("occupancy[both] must equal occupancy[white] | occupancy[black]")
	}
	if b.KingSquare(White) == NoSquare || b.KingSquare(Black) == NoSquare {
		t.Error("expected both kings to be placed")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
	}
	for _, fen := range fens {
		b := New()
		if err := b.ParsePlacement(fen); err != nil {
			t.Fatalf("ParsePlacement(%q) error: %v", fen, err)
		}
		got := b.ToFEN()
		b2 := New()
		if err := b2.ParsePlacement(got); err != nil {
			t.Fatalf("re-parsing ToFEN() output %q failed: %v", got, err)
		}
		if b2.ToFEN() != got {
			t.Errorf("FEN round-trip mismatch: %q vs %q", got, b2.ToFEN())
		}
	}
}

func TestParsePlacementRejectsMalformedFEN(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBXR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",
	}
	for _, fen := range cases {
		b := New()
		if err := b.ParsePlacement(fen); err == nil {
			t.Errorf("expected error parsing %q", fen)
		}
	}
}

func popcountBits(bb uint64) int {
	n := 0
	for bb != 0 {
		n++
		bb &= bb - 1
	}
	return n
}
