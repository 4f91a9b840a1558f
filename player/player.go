// Package player defines the capability boundary between the engine core
// and whatever drives it: a Player turns a board into a move.
package player

import (
	"math/rand"

	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/eval"
	"github.com/Gompe/chess/search"
)

// Player selects a move for the side to play. The board must be Ongoing.
type Player interface {
	SelectMove(b *board.Board) board.Move
}

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random player with its own RNG.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) SelectMove(b *board.Board) board.Move {
	moves := b.LegalMoves(b.SideToMove())
	if moves.Len() == 0 {
		panic("player: no legal moves, game is over")
	}
	return moves.Get(p.rng.Intn(moves.Len()))
}

// Engine pairs a searcher with the evaluator it searches with.
type Engine struct {
	searcher  search.Searcher
	evaluator eval.Evaluator
}

// NewEngine returns the searcher-backed player.
func NewEngine(searcher search.Searcher, evaluator eval.Evaluator) *Engine {
	return &Engine{searcher: searcher, evaluator: evaluator}
}

func (p *Engine) SelectMove(b *board.Board) board.Move {
	return p.searcher.Search(b, p.evaluator)
}

// IfElse routes between two players by a board predicate, e.g. swapping a
// mid-game engine for a deeper endgame engine once few pieces remain.
type IfElse struct {
	then      Player
	otherwise Player
	pred      func(b *board.Board) bool
}

// NewIfElse returns the predicate-routed player: then while pred holds,
// otherwise after.
func NewIfElse(then, otherwise Player, pred func(b *board.Board) bool) *IfElse {
	return &IfElse{then: then, otherwise: otherwise, pred: pred}
}

func (p *IfElse) SelectMove(b *board.Board) board.Move {
	if p.pred(b) {
		return p.then.SelectMove(b)
	}
	return p.otherwise.SelectMove(b)
}
