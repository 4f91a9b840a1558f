package search

import (
	"strings"
	"testing"
	"time"

	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
)

// applyMoves plays a space-separated legal move sequence.
func applyMoves(t *testing.T, b board.Board, text string) board.Board {
	t.Helper()

	for _, s := range strings.Fields(text) {
		m, err := board.ParseMove(s)
		if err != nil {
			t.Fatalf("bad move %q: %v", s, err)
		}
		if !b.LegalMoves(b.SideToMove()).Contains(m) {
			t.Fatalf("move %q is not legal", s)
		}
		b = b.Successor(m)
	}
	return b
}

// foolsMateThreat is the position after f3, e5, g4: Black mates with d8h4.
func foolsMateThreat(t *testing.T) board.Board {
	t.Helper()
	return applyMoves(t, board.StartingPosition(), "f2f3 e7e5 g2g4")
}

func testEvaluator() eval.Evaluator {
	return eval.NewLinear(eval.NewMaterial(), eval.NewPositional(), [2]float64{1, 0.05})
}

func TestAlphaBetaAgreesWithMinimax(t *testing.T) {
	b := board.StartingPosition()
	ev := testEvaluator()

	for depth := 1; depth <= 3; depth++ {
		mmScore, _ := NewMinimax(depth).SearchEval(&b, ev)
		abScore, _ := NewAlphaBeta(depth).SearchEval(&b, ev)

		if mmScore != abScore {
			t.Errorf("depth %d: minimax %v, alpha-beta %v", depth, mmScore, abScore)
		}
	}
}

func TestSearchersFindMateInOne(t *testing.T) {
	b := foolsMateThreat(t)
	mate, _ := board.ParseMove("d8h4")
	ev := testEvaluator()

	searchers := map[string]Searcher{
		"minimax":   NewMinimax(2),
		"alphabeta": NewAlphaBeta(2),
		"pv":        NewTimed(NewPVSearch(), 500*time.Millisecond),
	}

	for name, s := range searchers {
		got := s.Search(&b, ev)
		if got != mate {
			t.Errorf("%s returned %s, want d8h4", name, got)
			continue
		}
		next := b.Successor(got)
		if next.Status() != board.BlackWon {
			t.Errorf("%s: mate move did not end the game", name)
		}
	}
}

func TestAlphaBetaMateScore(t *testing.T) {
	b := foolsMateThreat(t)

	score, m := NewAlphaBeta(2).SearchEval(&b, testEvaluator())
	if score != eval.BlackWon {
		t.Errorf("score = %v, want %v", score, eval.BlackWon)
	}
	if m.String() != "d8h4" {
		t.Errorf("move = %s, want d8h4", m)
	}
}

func TestPVSearchReportsMate(t *testing.T) {
	b := foolsMateThreat(t)

	s := NewPVSearch()
	m, ok := s.Search(&b, testEvaluator(), 500*time.Millisecond)
	if !ok {
		t.Fatal("search failed on a legal position")
	}
	if m.String() != "d8h4" {
		t.Errorf("move = %s, want d8h4", m)
	}
}

func TestPVSearchUnderTightBudget(t *testing.T) {
	b := board.StartingPosition()

	m, ok := NewPVSearch().Search(&b, testEvaluator(), 50*time.Millisecond)
	if !ok {
		t.Fatal("search must complete depth 1 under any budget")
	}
	if !b.LegalMoves(board.White).Contains(m) {
		t.Errorf("returned move %s is not legal", m)
	}
}

func TestPVSearchNoLegalMoves(t *testing.T) {
	mated := applyMoves(t, board.StartingPosition(), "f2f3 e7e5 g2g4 d8h4")

	if _, ok := NewPVSearch().Search(&mated, testEvaluator(), 100*time.Millisecond); ok {
		t.Error("search on a finished game should report no move")
	}
}

func TestTimedFallsBackToSearcher(t *testing.T) {
	b := board.StartingPosition()

	s := NewTimed(NewPVSearch(), 100*time.Millisecond)
	m := s.Search(&b, testEvaluator())
	if !b.LegalMoves(board.White).Contains(m) {
		t.Errorf("returned move %s is not legal", m)
	}
}

func TestSortMVVOrdersCapturesFirst(t *testing.T) {
	// White can capture a queen with one rook and a pawn with the other.
	var b board.Board
	b = b.WithSideToMove(board.White)
	place := func(sqs string, p board.Piece) {
		sq, err := board.ParseSquare(sqs)
		if err != nil {
			t.Fatal(err)
		}
		b = b.With(sq, p)
	}
	place("a1", board.WhiteKing)
	place("h8", board.BlackKing)
	place("d1", board.WhiteRook)
	place("d5", board.BlackQueen)
	place("g1", board.WhiteRook)
	place("g5", board.BlackPawn)

	moves := b.LegalMoves(board.White)
	SortMVV(&b, moves)

	first := moves.Get(0)
	if b.At(first.To()) != board.BlackQueen {
		t.Errorf("first move after MVV sort is %s, want the queen capture", first)
	}

	second := moves.Get(1)
	if b.At(second.To()) != board.BlackPawn {
		t.Errorf("second move after MVV sort is %s, want the pawn capture", second)
	}

	for i := 2; i < moves.Len(); i++ {
		if b.At(moves.Get(i).To()) != board.NoPiece {
			t.Errorf("capture %s sorted after quiet moves", moves.Get(i))
		}
	}
}

func TestPromoteMove(t *testing.T) {
	b := board.StartingPosition()
	moves := b.LegalMoves(board.White)

	target := moves.Get(moves.Len() - 1)
	promoteMove(moves, target)
	if moves.Get(0) != target {
		t.Error("promoteMove did not front the move")
	}

	// Promoting an absent move leaves the list alone.
	head := moves.Get(0)
	promoteMove(moves, board.NoMove)
	if moves.Get(0) != head {
		t.Error("promoteMove moved something for an absent move")
	}
}
