package eval

import (
	"math"

	"github.com/Gompe/chess/board"
)

// kingSafetyTempo is the advantage credited to the side to move.
const kingSafetyTempo = 0.3

// KingSafety scores attacks by their proximity to the enemy king: every
// attacked square contributes an exponential kernel of its centrality and
// its Manhattan distance to the opposing king.
type KingSafety struct{}

// NewKingSafety returns the king-safety evaluator.
func NewKingSafety() *KingSafety {
	return &KingSafety{}
}

func (e *KingSafety) Name() string { return "KingSafety" }

func (e *KingSafety) Evaluate(b *board.Board) Score {
	total := b.SideToMove().Sign() * kingSafetyTempo

	var kings [2]board.Square
	kings[board.White] = b.FindKing(board.White)
	kings[board.Black] = b.FindKing(board.Black)

	var buf [28]board.Square
	for sq := board.Square(0); sq < 64; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}

		sign := p.Color().Sign()
		enemyKing := kings[p.Color().Other()]

		for _, att := range b.AttackedSquares(buf[:0], sq) {
			rad := math.Abs(float64(att.File())-3.5) + math.Abs(float64(att.Rank())-3.5)
			dist := manhattan(att, enemyKing)
			total += math.Exp((1-rad-3*dist)/8) * sign
		}
	}

	return Score(total)
}

func manhattan(a, b board.Square) float64 {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	return float64(df + dr)
}
