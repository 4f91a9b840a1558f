package board

import "testing"

func TestStartingPositionStatus(t *testing.T) {
	b := StartingPosition()

	if b.LegalMoves(White).Len() != 20 {
		t.Errorf("legal moves = %d, want 20", b.LegalMoves(White).Len())
	}
	if b.Status() != Ongoing {
		t.Errorf("status = %v, want Ongoing", b.Status())
	}
}

func TestScholarsMate(t *testing.T) {
	b := applyMoves(t, StartingPosition(),
		"e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7")

	if b.Status() != WhiteWon {
		t.Errorf("status = %v, want WhiteWon", b.Status())
	}
	if b.LegalMoves(Black).Len() != 0 {
		t.Error("checkmated side should have no legal moves")
	}
	if !b.InCheck(Black) {
		t.Error("checkmated side should be in check")
	}
}

func TestFoolsMate(t *testing.T) {
	b := applyMoves(t, StartingPosition(), "f2f3 e7e5 g2g4 d8h4")

	if b.Status() != BlackWon {
		t.Errorf("status = %v, want BlackWon", b.Status())
	}
}

func TestStalemate(t *testing.T) {
	// The classical queen stalemate: the black king on a8 has no move, and
	// is not in check.
	b := position(t, Black, map[string]Piece{
		"a8": BlackKing, "c8": WhiteKing, "c7": WhiteQueen,
	})

	if b.InCheck(Black) {
		t.Fatal("stalemated king must not be in check")
	}
	if n := b.LegalMoves(Black).Len(); n != 0 {
		t.Fatalf("legal moves = %d, want 0", n)
	}
	if b.Status() != Draw {
		t.Errorf("status = %v, want Draw", b.Status())
	}
}

func TestStatusExclusivity(t *testing.T) {
	boards := []Board{
		StartingPosition(),
		applyMoves(t, StartingPosition(), "e2e4 e7e5"),
		applyMoves(t, StartingPosition(), "f2f3 e7e5 g2g4 d8h4"),
		position(t, Black, map[string]Piece{
			"a8": BlackKing, "c8": WhiteKing, "c7": WhiteQueen,
		}),
	}

	for _, b := range boards {
		status := b.Status()
		moves := b.LegalMoves(b.SideToMove())

		if (status == Ongoing) != (moves.Len() > 0) {
			t.Errorf("status %v inconsistent with %d legal moves", status, moves.Len())
		}
		if status == Draw && b.InCheck(b.SideToMove()) {
			t.Error("a drawn side must not be in check")
		}
	}
}

func TestStatusFromMovesMatchesStatus(t *testing.T) {
	b := applyMoves(t, StartingPosition(), "e2e4 e7e5 g1f3")
	moves := b.LegalMoves(b.SideToMove())

	if b.StatusFromMoves(moves) != b.Status() {
		t.Error("StatusFromMoves disagrees with Status")
	}
}
