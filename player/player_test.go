package player

import (
	"testing"

	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
	"github.com/Gompe/chess/search"
)

func TestRandomPlaysLegalMoves(t *testing.T) {
	b := board.StartingPosition()
	legal := b.LegalMoves(board.White)

	p := NewRandom(1)
	seen := make(map[board.Move]bool)
	for i := 0; i < 50; i++ {
		m := p.SelectMove(&b)
		if !legal.Contains(m) {
			t.Fatalf("random player chose illegal move %s", m)
		}
		seen[m] = true
	}

	if len(seen) < 2 {
		t.Error("50 random draws produced a single move")
	}
}

func TestRandomDeterministicPerSeed(t *testing.T) {
	b := board.StartingPosition()

	a := NewRandom(7)
	c := NewRandom(7)
	for i := 0; i < 10; i++ {
		if a.SelectMove(&b) != c.SelectMove(&b) {
			t.Fatal("same seed produced different move sequences")
		}
	}
}

func TestEngineForwardsToSearcher(t *testing.T) {
	b := board.StartingPosition()

	p := NewEngine(search.NewMinimax(2), eval.NewMaterial())
	m := p.SelectMove(&b)

	if !b.LegalMoves(board.White).Contains(m) {
		t.Errorf("engine chose illegal move %s", m)
	}
}

func TestIfElseRoutes(t *testing.T) {
	b := board.StartingPosition()

	a := NewRandom(1)
	c := NewRandom(2)

	// The predicate sees the board it routes for.
	always := NewIfElse(a, c, func(bb *board.Board) bool {
		return bb.CountOccupied() == 32
	})
	never := NewIfElse(a, c, func(bb *board.Board) bool {
		return bb.CountOccupied() != 32
	})

	am := NewRandom(1).SelectMove(&b)
	cm := NewRandom(2).SelectMove(&b)

	if always.SelectMove(&b) != am {
		t.Error("IfElse did not route to the first player")
	}
	if never.SelectMove(&b) != cm {
		t.Error("IfElse did not route to the second player")
	}
}
