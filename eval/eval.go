// Package eval implements the composable position evaluators: primitive
// board-feature evaluators and the combinators that assemble them into the
// value functions the searchers consume.
package eval

import (
	"github.com/Gompe/chess/board"
)

// Score is a position value in White-positive orientation. Scores are
// totally ordered floats; evaluators never produce NaN.
type Score float64

// Terminal scores. Live (non-terminal) values stay strictly inside this
// range for every evaluator shipped here except Threshold, which saturates
// to these scores.
const (
	WhiteWon Score = 1000
	BlackWon Score = -1000
	Draw     Score = 0
)

// Evaluator computes a Score for a board. Implementations own their children
// by value or by embedded pointer; composition is acyclic by construction.
type Evaluator interface {
	Evaluate(b *board.Board) Score
	Name() string
}

// TerminalScore maps a finished game status to its score.
func TerminalScore(gs board.GameStatus) Score {
	switch gs {
	case board.WhiteWon:
		return WhiteWon
	case board.BlackWon:
		return BlackWon
	default:
		return Draw
	}
}
