package search

import (
	"log"
	"time"

	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
)

// Bound is the kind of transposition entry: an exact score (PV node), a
// lower bound (Cut node) or an upper bound (All node).
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// ttEntry is a transposition entry of the PV searcher. The backing map
// stores the full board, defending against hash collisions.
type ttEntry struct {
	bound Bound
	value Eval
	move  board.Move
	depth int
}

// budgetFraction of the caller's budget is actually spent searching; the
// rest is slack for unwinding and returning.
const budgetFraction = 0.9

// defaultQuiescenceDepth bounds the capture-only extension at the frontier.
const defaultQuiescenceDepth = 4

// timeCheckMask throttles deadline polling to one clock read per 1024
// visited nodes.
const timeCheckMask = 1023

// PVSearch is the timed iterative-deepening alpha-beta searcher: negamax
// with mate-aware values, a Zobrist-keyed transposition table with PV/All/
// Cut bounds, MVV move ordering seeded by the cached best move, and a
// capture-only quiescence extension at the frontier. Depth 1 always
// completes; deeper iterations are abandoned when the budget runs out, and
// an abandoned iteration never overwrites the previous one's move.
type PVSearch struct {
	quiescenceDepth int
	cache           *board.ZobristMap[ttEntry]
	noise           eval.Evaluator

	deadline time.Time
	nodes    uint64
}

// NewPVSearch returns a PV searcher with the default quiescence depth.
func NewPVSearch() *PVSearch {
	return &PVSearch{
		quiescenceDepth: defaultQuiescenceDepth,
		cache:           board.NewZobristMap[ttEntry](),
		// A non-zero capture delta over the zero evaluator marks the
		// position as noisy.
		noise: eval.NewCapture(eval.NewTrivial()),
	}
}

// Search finds a move within the budget. It reports false only when the
// position has no legal move.
func (s *PVSearch) Search(b *board.Board, ev eval.Evaluator, budget time.Duration) (board.Move, bool) {
	moves := b.LegalMoves(b.SideToMove())
	if moves.Len() == 0 {
		return board.NoMove, false
	}

	s.cache.Clear()
	s.nodes = 0
	s.deadline = time.Now().Add(time.Duration(float64(budget) * budgetFraction))

	SortMVV(b, moves)

	// Depth 1 runs without deadline checks so a move always exists.
	best, _ := s.searchRoot(b, ev, moves, 1, true)

	for depth := 2; ; depth++ {
		if time.Now().After(s.deadline) {
			log.Printf("[Search] cutoff before depth %d", depth)
			break
		}

		move, ok := s.searchRoot(b, ev, moves, depth, false)
		if !ok {
			log.Printf("[Search] abandoned depth %d", depth)
			break
		}
		best = move
	}

	return best, true
}

// searchRoot runs one full-window iteration at the given depth and returns
// the best root move. ok is false when the deadline interrupted the
// iteration; the partial result is discarded by the caller.
func (s *PVSearch) searchRoot(b *board.Board, ev eval.Evaluator, moves *board.MoveList, depth int, ignoreDeadline bool) (board.Move, bool) {
	if e, ok := s.cache.Get(b); ok {
		promoteMove(moves, e.move)
	}

	alpha := evalMin
	best := board.NoMove

	for i := 0; i < moves.Len(); i++ {
		if !ignoreDeadline && time.Now().After(s.deadline) {
			return board.NoMove, false
		}

		m := moves.Get(i)
		next := b.Successor(m)

		v, ok := s.negamax(&next, ev, depth-1, evalMax.Backward(), alpha.Backward(), ignoreDeadline)
		if !ok {
			return board.NoMove, false
		}

		if score := v.Forward(); score.Cmp(alpha) > 0 {
			alpha = score
			best = m
		}
	}

	s.store(b, ttEntry{bound: BoundExact, value: alpha, move: best, depth: depth})
	log.Printf("[Search] depth %d done: %s %s", depth, best, alpha)
	return best, true
}

// negamax searches with depth plies remaining. Scores are side-to-move
// relative. ok is false when the deadline fired; such frames store nothing.
func (s *PVSearch) negamax(b *board.Board, ev eval.Evaluator, depth int, alpha, beta Eval, ignoreDeadline bool) (Eval, bool) {
	s.nodes++
	if !ignoreDeadline && s.nodes&timeCheckMask == 0 && time.Now().After(s.deadline) {
		return Eval{}, false
	}

	if depth == 0 {
		return s.frontier(b, ev, alpha, beta), true
	}

	cachedMove := board.NoMove
	if e, ok := s.cache.Get(b); ok {
		if e.depth >= depth {
			switch e.bound {
			case BoundExact:
				return e.value, true
			case BoundLower:
				if e.value.Cmp(beta) >= 0 {
					return e.value, true
				}
			case BoundUpper:
				if e.value.Cmp(alpha) <= 0 {
					return e.value, true
				}
			}
		}
		cachedMove = e.move
	}

	moves := b.LegalMoves(b.SideToMove())
	if moves.Len() == 0 {
		if b.InCheck(b.SideToMove()) {
			// The side to move is checkmated.
			return MinimizerMate(0), true
		}
		return Exact(eval.Draw), true
	}

	SortMVV(b, moves)
	promoteMove(moves, cachedMove)

	alphaOrig := alpha
	best := evalMin
	bestMove := moves.Get(0)

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		next := b.Successor(m)

		v, ok := s.negamax(&next, ev, depth-1, beta.Backward(), alpha.Backward(), ignoreDeadline)
		if !ok {
			return Eval{}, false
		}

		score := v.Forward()
		if score.Cmp(best) > 0 {
			best = score
			bestMove = m
		}
		if score.Cmp(alpha) > 0 {
			alpha = score
		}
		if alpha.Cmp(beta) >= 0 {
			break
		}
	}

	var entry ttEntry
	switch {
	case alpha.Cmp(beta) >= 0:
		entry = ttEntry{bound: BoundLower, value: beta, move: bestMove, depth: depth}
	case alpha.Cmp(alphaOrig) > 0:
		entry = ttEntry{bound: BoundExact, value: alpha, move: bestMove, depth: depth}
	default:
		entry = ttEntry{bound: BoundUpper, value: alpha, move: bestMove, depth: depth}
	}
	s.store(b, entry)

	return best, true
}

// frontier evaluates a depth-0 node: the static score for quiet positions,
// a capture-only quiescence search for noisy ones.
func (s *PVSearch) frontier(b *board.Board, ev eval.Evaluator, alpha, beta Eval) Eval {
	if s.noise.Evaluate(b) == 0 {
		return s.staticEval(b, ev)
	}
	return s.quiesce(b, ev, s.quiescenceDepth, alpha, beta)
}

// staticEval returns the evaluator's score in the side-to-move frame.
func (s *PVSearch) staticEval(b *board.Board, ev eval.Evaluator) Eval {
	sign := eval.Score(b.SideToMove().Sign())
	return Exact(sign * ev.Evaluate(b))
}

// quiesce extends the search through capture moves only, up to depth extra
// plies, to settle tactical noise before trusting the static evaluation.
func (s *PVSearch) quiesce(b *board.Board, ev eval.Evaluator, depth int, alpha, beta Eval) Eval {
	if depth == 0 {
		return s.staticEval(b, ev)
	}

	moves := b.LegalMoves(b.SideToMove())
	if moves.Len() == 0 {
		if b.InCheck(b.SideToMove()) {
			return MinimizerMate(0)
		}
		return Exact(eval.Draw)
	}

	captures := board.NewMoveList()
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); b.At(m.To()) != board.NoPiece {
			captures.Add(m)
		}
	}

	stand := s.staticEval(b, ev)
	if captures.Len() == 0 {
		return stand
	}

	// Stand pat: declining every capture stays available.
	if stand.Cmp(alpha) > 0 {
		alpha = stand
	}
	if alpha.Cmp(beta) >= 0 {
		return alpha
	}

	SortMVV(b, captures)

	for i := 0; i < captures.Len(); i++ {
		next := b.Successor(captures.Get(i))
		score := s.quiesce(&next, ev, depth-1, beta.Backward(), alpha.Backward()).Forward()

		if score.Cmp(alpha) > 0 {
			alpha = score
		}
		if alpha.Cmp(beta) >= 0 {
			break
		}
	}

	return alpha
}

// store writes a transposition entry, keeping a deeper existing entry for
// the same position.
func (s *PVSearch) store(b *board.Board, e ttEntry) {
	if old, ok := s.cache.Get(b); ok && old.depth > e.depth {
		return
	}
	s.cache.Put(b, e)
}
