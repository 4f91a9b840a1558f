package eval

import (
	"math"

	"github.com/Gompe/chess/board"
)

// dynamicTempo is the advantage credited to the side to move.
const dynamicTempo = 1.0

// Dynamic scores centre-weighted mobility: every attacked square contributes
// an exponential kernel of its centrality, plus a tempo for having the move.
type Dynamic struct{}

// NewDynamic returns the dynamic evaluator.
func NewDynamic() *Dynamic {
	return &Dynamic{}
}

func (e *Dynamic) Name() string { return "Dynamic" }

func (e *Dynamic) Evaluate(b *board.Board) Score {
	total := b.SideToMove().Sign() * dynamicTempo

	var buf [28]board.Square
	for sq := board.Square(0); sq < 64; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}

		sign := p.Color().Sign()
		for _, att := range b.AttackedSquares(buf[:0], sq) {
			rad := math.Abs(float64(att.File())-3.5) + math.Abs(float64(att.Rank())-3.5)
			total += math.Exp((1-rad)/8) * sign
		}
	}

	return Score(total)
}
