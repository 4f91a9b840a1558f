package search

import (
	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
)

// abEntry is a transposition entry of the fixed-depth searcher: the score
// and best move found with the given remaining depth. The backing map
// stores the full board, so a hash collision reads as a miss.
type abEntry struct {
	score eval.Score
	move  board.Move
	depth int
}

// AlphaBeta is the fixed-depth alpha-beta searcher, White maximizing, with
// a Zobrist-keyed transposition table warmed by iterative deepening. It
// agrees with Minimax on the returned score at equal depth.
type AlphaBeta struct {
	maxDepth int
	cache    *board.ZobristMap[abEntry]
}

// NewAlphaBeta returns an alpha-beta searcher. maxDepth must be positive.
func NewAlphaBeta(maxDepth int) *AlphaBeta {
	if maxDepth <= 0 {
		panic("search: max depth must be at least 1")
	}
	return &AlphaBeta{
		maxDepth: maxDepth,
		cache:    board.NewZobristMap[abEntry](),
	}
}

func (s *AlphaBeta) Search(b *board.Board, ev eval.Evaluator) board.Move {
	_, m := s.SearchEval(b, ev)
	return m
}

// SearchEval returns the alpha-beta score together with the chosen move.
// The transposition table is cleared, then warmed depth by depth so the
// final pass searches the previous iteration's best line first.
func (s *AlphaBeta) SearchEval(b *board.Board, ev eval.Evaluator) (eval.Score, board.Move) {
	s.cache.Clear()

	for depth := 1; depth < s.maxDepth; depth++ {
		s.searchImpl(b, ev, depth, -infinity, infinity)
	}
	return s.searchImpl(b, ev, s.maxDepth, -infinity, infinity)
}

func (s *AlphaBeta) searchImpl(b *board.Board, ev eval.Evaluator, depth int, alpha, beta eval.Score) (eval.Score, board.Move) {
	if depth == 0 {
		return ev.Evaluate(b), board.NoMove
	}

	cachedMove := board.NoMove
	if e, ok := s.cache.Get(b); ok {
		if e.depth >= depth {
			// The stored score was good enough to cut at this depth from
			// the other player's point of view.
			if b.SideToMove() == board.White && e.score >= beta {
				return e.score, e.move
			}
			if b.SideToMove() == board.Black && e.score <= alpha {
				return e.score, e.move
			}
		}
		cachedMove = e.move
	}

	moves := b.LegalMoves(b.SideToMove())
	if status := b.StatusFromMoves(moves); status != board.Ongoing {
		return eval.TerminalScore(status), board.NoMove
	}

	SortMVV(b, moves)
	promoteMove(moves, cachedMove)

	bestMove := board.NoMove

	if b.SideToMove() == board.White {
		value := -infinity
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			next := b.Successor(m)
			score, _ := s.searchImpl(&next, ev, depth-1, alpha, beta)

			if score > value || bestMove == board.NoMove {
				value = score
				bestMove = m
			}
			if value >= beta {
				break
			}
			if value > alpha {
				alpha = value
			}
		}
		s.cache.Put(b, abEntry{score: value, move: bestMove, depth: depth})
		return value, bestMove
	}

	value := infinity
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		next := b.Successor(m)
		score, _ := s.searchImpl(&next, ev, depth-1, alpha, beta)

		if score < value || bestMove == board.NoMove {
			value = score
			bestMove = m
		}
		if value <= alpha {
			break
		}
		if value < beta {
			beta = value
		}
	}
	s.cache.Put(b, abEntry{score: value, move: bestMove, depth: depth})
	return value, bestMove
}
