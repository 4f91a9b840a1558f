package search

import (
	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
)

// infinity brackets every live score; terminal scores are +/-1000.
const infinity eval.Score = 1001

// Minimax is the plain fixed-depth minimax searcher, White maximizing. It
// exists as the reference the pruning searchers are checked against.
type Minimax struct {
	maxDepth int
}

// NewMinimax returns a minimax searcher. maxDepth must be positive.
func NewMinimax(maxDepth int) *Minimax {
	if maxDepth <= 0 {
		panic("search: max depth must be at least 1")
	}
	return &Minimax{maxDepth: maxDepth}
}

func (s *Minimax) Search(b *board.Board, ev eval.Evaluator) board.Move {
	_, m := s.SearchEval(b, ev)
	return m
}

// SearchEval returns the minimax score together with the chosen move.
func (s *Minimax) SearchEval(b *board.Board, ev eval.Evaluator) (eval.Score, board.Move) {
	return s.searchImpl(b, ev, s.maxDepth)
}

func (s *Minimax) searchImpl(b *board.Board, ev eval.Evaluator, depth int) (eval.Score, board.Move) {
	if depth == 0 {
		return ev.Evaluate(b), board.NoMove
	}

	moves := b.LegalMoves(b.SideToMove())
	if status := b.StatusFromMoves(moves); status != board.Ongoing {
		return eval.TerminalScore(status), board.NoMove
	}

	bestMove := board.NoMove

	if b.SideToMove() == board.White {
		value := -infinity
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			next := b.Successor(m)
			score, _ := s.searchImpl(&next, ev, depth-1)
			if score > value || bestMove == board.NoMove {
				value = score
				bestMove = m
			}
		}
		return value, bestMove
	}

	value := infinity
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		next := b.Successor(m)
		score, _ := s.searchImpl(&next, ev, depth-1)
		if score < value || bestMove == board.NoMove {
			value = score
			bestMove = m
		}
	}
	return value, bestMove
}
