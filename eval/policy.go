package eval

import (
	"math"

	"github.com/Gompe/chess/board"
)

// Policy converts a board and its legal moves into a probability
// distribution over those moves: non-negative entries summing to 1.
type Policy interface {
	Priors(b *board.Board, moves *board.MoveList) []float64
}

// SoftmaxPolicy derives priors from an evaluator: each move scores the
// evaluation of its successor, oriented for the side to move, divided by the
// temperature; the scores pass through exp and are renormalised. Lower
// temperatures sharpen the distribution.
type SoftmaxPolicy struct {
	evaluator   Evaluator
	temperature float64
}

// NewSoftmaxPolicy returns a softmax policy over the evaluator.
func NewSoftmaxPolicy(evaluator Evaluator, temperature float64) *SoftmaxPolicy {
	return &SoftmaxPolicy{evaluator: evaluator, temperature: temperature}
}

func (p *SoftmaxPolicy) Priors(b *board.Board, moves *board.MoveList) []float64 {
	sign := b.SideToMove().Sign()

	priors := make([]float64, moves.Len())
	var sum float64
	for i := 0; i < moves.Len(); i++ {
		next := b.Successor(moves.Get(i))
		priors[i] = math.Exp(sign * float64(p.evaluator.Evaluate(&next)) / p.temperature)
		sum += priors[i]
	}

	for i := range priors {
		priors[i] /= sum
	}

	return priors
}
