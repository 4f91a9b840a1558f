// Package mcts implements Monte-Carlo tree search: UCT selection over
// policy priors, with node values anchored to the evaluator's estimate.
package mcts

import (
	"log"
	"math"

	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
)

// Terminal rollout values, on the unit scale the tree operates in.
const (
	whiteWonValue eval.Score = 1
	blackWonValue eval.Score = -1
	drawValue     eval.Score = 0
)

// node is one expanded position. Q-values are kept in the White-positive
// frame; updates at Black-to-move nodes flip the observed delta so UCT
// always maximises for the side to move. anchor is the evaluator's value of
// the position itself, used to centre the deltas.
type node struct {
	moves  *board.MoveList
	priors []float64
	visits []int
	q      []float64
	anchor float64
}

// MCTS is the UCT tree searcher. The tree is keyed by Zobrist hash and
// lives for the duration of the searcher; positions transpose into the same
// node. Not safe for concurrent use.
type MCTS struct {
	policy   eval.Policy
	maxDepth int
	maxIters int
	cPuct    float64
	tree     *board.ZobristMap[*node]
}

// New returns an MCTS searcher. maxDepth and maxIters must be positive;
// cPuct scales exploration.
func New(policy eval.Policy, maxDepth, maxIters int, cPuct float64) *MCTS {
	if maxDepth <= 0 {
		panic("mcts: max depth must be at least 1")
	}
	if maxIters <= 0 {
		panic("mcts: max iterations must be at least 1")
	}
	return &MCTS{
		policy:   policy,
		maxDepth: maxDepth,
		maxIters: maxIters,
		cPuct:    cPuct,
		tree:     board.NewZobristMap[*node](),
	}
}

// Search runs the configured number of iterations from the root and returns
// the move of the most-visited root child.
func (s *MCTS) Search(b *board.Board, ev eval.Evaluator) board.Move {
	for i := 0; i < s.maxIters; i++ {
		s.iterate(b, ev, 0)
	}

	root, ok := s.tree.Get(b)
	if !ok {
		// A single iteration always expands the root.
		log.Printf("[MCTS] root was never expanded")
		return board.NoMove
	}

	best := 0
	for i := 1; i < root.moves.Len(); i++ {
		if root.visits[i] > root.visits[best] {
			best = i
		}
	}

	log.Printf("[MCTS] %d nodes, best %s (visits %d, q %.3f, prior %.3f)",
		s.tree.Len(), root.moves.Get(best), root.visits[best], root.q[best], root.priors[best])

	return root.moves.Get(best)
}

// iterate runs one selection/expansion/backup pass and returns the value
// estimate of the position, White-positive.
func (s *MCTS) iterate(b *board.Board, ev eval.Evaluator, depth int) eval.Score {
	if depth == s.maxDepth {
		return ev.Evaluate(b)
	}

	n, ok := s.tree.Get(b)
	if !ok {
		// First visit: expand, cache the priors and the anchor value, and
		// stop here; the evaluator's estimate is the rollout value.
		moves := b.LegalMoves(b.SideToMove())
		value := ev.Evaluate(b)

		n = &node{
			moves:  moves,
			priors: s.policy.Priors(b, moves),
			visits: make([]int, moves.Len()),
			q:      make([]float64, moves.Len()),
			anchor: float64(value),
		}
		s.tree.Put(b, n)
		return value
	}

	switch b.StatusFromMoves(n.moves) {
	case board.WhiteWon:
		return whiteWonValue
	case board.BlackWon:
		return blackWonValue
	case board.Draw:
		return drawValue
	}

	best := s.selectChild(n)

	next := b.Successor(n.moves.Get(best))
	v := s.iterate(&next, ev, depth+1)

	// Incremental mean of the anchored, side-oriented delta.
	sign := b.SideToMove().Sign()
	delta := (float64(v)-n.anchor)*sign - n.q[best]
	n.q[best] += delta / float64(n.visits[best]+1)
	n.visits[best]++

	return v
}

// selectChild maximises the UCT bound over the node's children.
func (s *MCTS) selectChild(n *node) int {
	total := 0
	for _, c := range n.visits {
		total += c
	}
	sqrtTotal := math.Sqrt(1 + float64(total))

	best := 0
	bestBound := uctBound(n, 0, sqrtTotal, s.cPuct)
	for i := 1; i < n.moves.Len(); i++ {
		if u := uctBound(n, i, sqrtTotal, s.cPuct); u > bestBound {
			best = i
			bestBound = u
		}
	}
	return best
}

func uctBound(n *node, i int, sqrtTotal, cPuct float64) float64 {
	return n.q[i] + cPuct*n.priors[i]*sqrtTotal/(1+float64(n.visits[i]))
}
