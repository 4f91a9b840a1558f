package eval

import (
	"github.com/Gompe/chess/board"
)

// Mobility weights by PieceType for the positional evaluator.
var positionalWeights = [6]float64{2, 3, 1, 1, 1, 0.5}

// pawnAdvanceWeight scores pawn advancement per rank beyond the home rank.
const pawnAdvanceWeight = 3

// Positional scores mobility: each piece contributes its attacked-square
// count scaled by a per-piece weight, and pawns additionally score their
// advancement toward promotion.
type Positional struct{}

// NewPositional returns the mobility evaluator.
func NewPositional() *Positional {
	return &Positional{}
}

func (e *Positional) Name() string { return "Positional" }

func (e *Positional) Evaluate(b *board.Board) Score {
	var total float64
	var buf [28]board.Square

	for sq := board.Square(0); sq < 64; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}

		sign := p.Color().Sign()
		attacked := b.AttackedSquares(buf[:0], sq)
		total += float64(len(attacked)) * sign * positionalWeights[p.Type()]

		if p.Type() == board.Pawn {
			total += sign * pawnAdvanceWeight * float64(sq.RelativeRank(p.Color())-1)
		}
	}

	return Score(total)
}
