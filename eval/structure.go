package eval

import (
	"github.com/Gompe/chess/board"
)

// Structure counts defenders: each attacked square occupied by a piece of
// the attacker's own color scores one point with the owner's sign.
type Structure struct{}

// NewStructure returns the structure evaluator.
func NewStructure() *Structure {
	return &Structure{}
}

func (e *Structure) Name() string { return "Structure" }

func (e *Structure) Evaluate(b *board.Board) Score {
	var total float64
	var buf [28]board.Square

	for sq := board.Square(0); sq < 64; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}

		for _, att := range b.AttackedSquares(buf[:0], sq) {
			if other := b.At(att); other != board.NoPiece && other.Color() == p.Color() {
				total += p.Color().Sign()
			}
		}
	}

	return Score(total)
}
