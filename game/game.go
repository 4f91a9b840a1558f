// Package game tracks a chess game outside the engine core: move
// application with legality checking, and the plies-since-progress draw
// rule the searchers deliberately ignore.
package game

import (
	"errors"

	"github.com/Gompe/chess/board"
)

// Errors reported by ApplyMove. The board is left untouched in both cases.
var (
	ErrIllegalMove = errors.New("game: illegal move")
	ErrGameOver    = errors.New("game: game is already over")
)

// progressLimit is the 50-move rule expressed in plies: a game with no
// capture or pawn move for this many plies is drawn.
const progressLimit = 100

// Game is a board plus the bookkeeping the core does not carry: the derived
// status and the plies elapsed since a capture or pawn move.
type Game struct {
	board           board.Board
	status          board.GameStatus
	pliesNoProgress int
	rounds          int
}

// New starts a game from the standard starting position.
func New() *Game {
	return FromBoard(board.StartingPosition())
}

// FromBoard starts a game from an arbitrary position.
func FromBoard(b board.Board) *Game {
	return &Game{board: b, status: b.Status()}
}

// Board returns the current position.
func (g *Game) Board() board.Board {
	return g.board
}

// Status returns the game status, including the 50-move draw.
func (g *Game) Status() board.GameStatus {
	return g.status
}

// Rounds returns the number of plies played.
func (g *Game) Rounds() int {
	return g.rounds
}

// ApplyMove validates the move against the legal list and advances the
// game. It fails with ErrGameOver when the game has ended and with
// ErrIllegalMove when the move is not legal in the current position.
func (g *Game) ApplyMove(m board.Move) error {
	if g.status != board.Ongoing {
		return ErrGameOver
	}
	if !g.board.LegalMoves(g.board.SideToMove()).Contains(m) {
		return ErrIllegalMove
	}

	progress := g.board.At(m.To()) != board.NoPiece ||
		g.board.At(m.From()).Type() == board.Pawn

	g.board = g.board.Successor(m)
	g.rounds++

	if progress {
		g.pliesNoProgress = 0
	} else {
		g.pliesNoProgress++
	}

	g.status = g.board.Status()
	if g.status == board.Ongoing && g.pliesNoProgress >= progressLimit {
		g.status = board.Draw
	}

	return nil
}
