package eval

import (
	"math"
	"testing"

	"github.com/Gompe/chess/board"
)

func TestSoftmaxPriorsSumToOne(t *testing.T) {
	b := board.StartingPosition()
	moves := b.LegalMoves(board.White)

	for _, temp := range []float64{0.1, 1, 10} {
		policy := NewSoftmaxPolicy(NewPositional(), temp)
		priors := policy.Priors(&b, moves)

		if len(priors) != moves.Len() {
			t.Fatalf("got %d priors for %d moves", len(priors), moves.Len())
		}

		var sum float64
		for _, p := range priors {
			if p <= 0 {
				t.Fatalf("prior %v is not positive", p)
			}
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("temp %v: priors sum to %v", temp, sum)
		}
	}
}

func TestSoftmaxOrientation(t *testing.T) {
	// A free black rook: capturing it must be the most likely move for
	// White under a sharp material policy.
	b := position(t, board.White, map[string]board.Piece{
		"a1": board.WhiteKing, "h8": board.BlackKing,
		"d1": board.WhiteRook, "d5": board.BlackRook,
	})

	moves := b.LegalMoves(board.White)
	priors := NewSoftmaxPolicy(NewMaterial(), 0.1).Priors(&b, moves)

	best := 0
	for i := range priors {
		if priors[i] > priors[best] {
			best = i
		}
	}

	capture, _ := board.ParseMove("d1d5")
	if moves.Get(best) != capture {
		t.Errorf("most likely move = %s, want d1d5", moves.Get(best))
	}
}

func TestRolloutTerminal(t *testing.T) {
	// A finished game evaluates to the unit terminal value immediately.
	mated := applyMoves(t, board.StartingPosition(), "f2f3 e7e5 g2g4 d8h4")

	policy := NewSoftmaxPolicy(NewMaterial(), 1)
	rollout := NewRollout(policy, NewMaterial(), 4)

	if got := rollout.Evaluate(&mated); got != -1 {
		t.Errorf("rollout of a black win = %v, want -1", got)
	}
}

func TestRolloutGreedyCapture(t *testing.T) {
	// One ply deep, the greedy policy grabs the hanging rook, leaving
	// White a rook up.
	b := position(t, board.White, map[string]board.Piece{
		"a1": board.WhiteKing, "h8": board.BlackKing,
		"d1": board.WhiteRook, "d5": board.BlackRook,
	})

	policy := NewSoftmaxPolicy(NewMaterial(), 0.1)
	rollout := NewRollout(policy, NewMaterial(), 1)

	if got := rollout.Evaluate(&b); got != 5 {
		t.Errorf("rollout = %v, want 5", got)
	}
}

func TestStochasticRolloutDeterministicPerSeed(t *testing.T) {
	b := board.StartingPosition()
	policy := NewSoftmaxPolicy(NewMaterial(), 1)

	a := NewStochasticRollout(policy, NewMaterial(), 2, 2, 42)
	c := NewStochasticRollout(policy, NewMaterial(), 2, 2, 42)

	va := a.Evaluate(&b)
	vc := c.Evaluate(&b)
	if va != vc {
		t.Errorf("same seed, different values: %v vs %v", va, vc)
	}
}

func TestStochasticRolloutTerminal(t *testing.T) {
	mated := applyMoves(t, board.StartingPosition(), "f2f3 e7e5 g2g4 d8h4")

	policy := NewSoftmaxPolicy(NewMaterial(), 1)
	rollout := NewStochasticRollout(policy, NewMaterial(), 3, 2, 7)

	if got := rollout.Evaluate(&mated); got != -1 {
		t.Errorf("stochastic rollout of a black win = %v, want -1", got)
	}
}
