package board

import "testing"

func TestStartposHasTwentyMoves(t *testing.T) {
	b := NewStartpos()
	var list MoveList
	b.GenerateLegalMoves(&list)
	if list.Len() != 20 {
		t.Errorf("expected 20 legal moves from startpos, got %d: %s", list.Len(), list.String())
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	b := NewStartpos()
	before := b.ToFEN()
	snap := b.Snapshot()

	m, err := b.ParseUCIMove("e2e4")
	if err != nil {
		t.Fatalf("ParseUCIMove(e2e4): %v", err)
	}
	if !b.Make(m) {
		t.Fatal("expected e2e4 to be accepted")
	}
	b.Restore(snap)

	if got := b.ToFEN(); got != before {
		t.Errorf("Restore did not reproduce the pre-move position: got %q want %q", got, before)
	}
}

func TestMakeRejectsMoveThatLeavesOwnKingInCheck(t *testing.T) {
	b := New()
	if err := b.ParsePlacement("4k3/8/8/8/8/8/8/4K2r w - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	// King on e1 (sq 60) stepping to f1 (sq 61) walks along the rook's
	// rank (rank 1, occupied by the rook on h1) — illegal.
	m := EncodeMove(Square(60), Square(61), WhiteKing, NoPiece, MoveFlags{})
	if b.Make(m) {
		t.Error("expected Kf1 to be rejected: f1 is attacked by the rook on h1")
	}
}

func TestPromotionEmitsFourVariants(t *testing.T) {
	b := New()
	if err := b.ParsePlacement("8/P7/8/8/8/8/8/4k2K w - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	var list MoveList
	b.GenerateMoves(&list)
	promoCount := 0
	seen := map[Piece]bool{}
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Source() == Square(8) && m.IsPromotion() {
			promoCount++
			seen[m.PromotedPiece()] = true
		}
	}
	if promoCount != 4 {
		t.Errorf("expected 4 promotion moves from a7, got %d", promoCount)
	}
	for _, p := range []Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight} {
		if !seen[p] {
			t.Errorf("expected promotion to %v to be generated", p)
		}
	}
}

func TestEnPassantGeneratedOnlyRightAfterDoublePush(t *testing.T) {
	b := New()
	if err := b.ParsePlacement("4k2K/8/8/8/pP6/8/8/8 b - -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	// No ep square set yet: black pawn capturing en passant must not appear.
	var list MoveList
	b.GenerateMoves(&list)
	for i := 0; i < list.Len(); i++ {
		if list.At(i).IsEnPassant() {
			t.Fatal("did not expect an en-passant move before any double push")
		}
	}

	// Now set up the position as it would be immediately after White
	// played a2a4 (double push), giving Black's b4 pawn an ep capture.
	b2 := New()
	if err := b2.ParsePlacement("4k2K/8/8/8/Pp6/8/8/8 b - a3"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	var list2 MoveList
	b2.GenerateMoves(&list2)
	found := false
	for i := 0; i < list2.Len(); i++ {
		if list2.At(i).IsEnPassant() {
			found = true
		}
	}
	if !found {
		t.Error("expected an en-passant capture to be generated")
	}
}

func TestCastlingRejectedWhenSquaresAttacked(t *testing.T) {
	// White king e1, rook h1, king-side castling right set, but the
	// black rook on f7 attacks f1 down the open f-file.
	b := New()
	if err := b.ParsePlacement("4k2r/5r2/8/8/8/8/8/4K2R w K -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	var list MoveList
	b.GenerateMoves(&list)
	for i := 0; i < list.Len(); i++ {
		if list.At(i).IsCastling() {
			t.Error("did not expect king-side castling to be generated while f1 is attacked")
		}
	}
}

func TestCastlingAppliesRookMove(t *testing.T) {
	b := New()
	if err := b.ParsePlacement("4k3/8/8/8/8/8/8/4K2R w K -"); err != nil {
		t.Fatalf("ParsePlacement: %v", err)
	}
	var list MoveList
	b.GenerateMoves(&list)
	var castle Move
	found := false
	for i := 0; i < list.Len(); i++ {
		if list.At(i).IsCastling() {
			castle = list.At(i)
			found = true
		}
	}
	if !found {
		t.Fatal("expected king-side castling to be available")
	}
	if !b.Make(castle) {
		t.Fatal("expected castling move to be accepted")
	}
	if b.PieceAt(Square(63)) != NoPiece {
		t.Error("expected h1 to be empty after castling")
	}
	if b.PieceAt(Square(61)) != WhiteRook {
		t.Error("expected the rook to have moved to f1")
	}
	if b.PieceAt(Square(62)) != WhiteKing {
		t.Error("expected the king to have moved to g1")
	}
}
