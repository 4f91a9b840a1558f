package eval

import (
	"github.com/Gompe/chess/board"
)

// Default material weights, indexed by PieceType. The king carries no
// material value.
var defaultMaterial = [6]float64{1, 3, 3, 5, 9, 0}

// Material sums per-piece material values with the owner's sign.
type Material struct {
	values [6]float64
}

// NewMaterial returns a Material evaluator with the default weights
// (pawn 1, knight 3, bishop 3, rook 5, queen 9).
func NewMaterial() *Material {
	return &Material{values: defaultMaterial}
}

// MaterialWeights returns a Material evaluator with custom weights for
// pawn, knight, bishop, rook and queen.
func MaterialWeights(pawn, knight, bishop, rook, queen float64) *Material {
	return &Material{values: [6]float64{pawn, knight, bishop, rook, queen, 0}}
}

func (e *Material) Name() string { return "Material" }

func (e *Material) Evaluate(b *board.Board) Score {
	var total float64

	for sq := board.Square(0); sq < 64; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}
		total += p.Color().Sign() * e.values[p.Type()]
	}

	return Score(total)
}
