// Package search implements the depth-first searchers: a reference minimax,
// a fixed-depth alpha-beta with a transposition table, and a timed
// iterative-deepening principal-variation searcher with mate-aware scoring
// and quiescence.
package search

import (
	"time"

	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
)

// Searcher finds a move for the side to play. The board must be Ongoing.
type Searcher interface {
	Search(b *board.Board, ev eval.Evaluator) board.Move
}

// TimedSearcher finds a move within a time budget. It reports false only
// when no move could be produced at all (no legal move, or a budget too
// small to finish a single ply).
type TimedSearcher interface {
	Search(b *board.Board, ev eval.Evaluator, budget time.Duration) (board.Move, bool)
}

// Timed adapts a TimedSearcher to the plain Searcher interface with a fixed
// budget, falling back to the first legal move if the budget is blown.
type Timed struct {
	searcher TimedSearcher
	budget   time.Duration
}

// NewTimed wraps the timed searcher with a per-move budget.
func NewTimed(searcher TimedSearcher, budget time.Duration) *Timed {
	return &Timed{searcher: searcher, budget: budget}
}

func (t *Timed) Search(b *board.Board, ev eval.Evaluator) board.Move {
	if m, ok := t.searcher.Search(b, ev, t.budget); ok {
		return m
	}
	return b.LegalMoves(b.SideToMove()).Get(0)
}
