package eval

import (
	"github.com/Gompe/chess/board"
)

// Attack weights by PieceType for the pressure heatmaps. Cheap pieces exert
// more useful pressure than expensive ones, so the scale is inverted
// relative to material.
var pressureWeights = [6]float64{5, 3.3, 3, 2, 1, 0.5}

// checkPenalty is charged, in the mover's frame, when the side to move is
// in check.
const checkPenalty = 10

// Pressure builds per-color attack heatmaps weighted by pressureWeights and
// scores every square by the attack differential: empty squares count the
// raw differential, occupied squares the differential divided by the
// occupant's weight. Pawns additionally score advancement, and a side to
// move in check pays a penalty.
type Pressure struct{}

// NewPressure returns the pressure evaluator.
func NewPressure() *Pressure {
	return &Pressure{}
}

func (e *Pressure) Name() string { return "Pressure" }

func (e *Pressure) Evaluate(b *board.Board) Score {
	var total float64
	var white, black [64]float64
	var buf [28]board.Square

	for sq := board.Square(0); sq < 64; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}

		weight := pressureWeights[p.Type()]
		heat := &white
		if p.Color() == board.Black {
			heat = &black
		}
		for _, att := range b.AttackedSquares(buf[:0], sq) {
			heat[att] += weight
		}

		if p.Type() == board.Pawn {
			total += p.Color().Sign() * pawnAdvanceWeight * float64(sq.RelativeRank(p.Color())-1)
		}
	}

	for sq := board.Square(0); sq < 64; sq++ {
		diff := white[sq] - black[sq]
		if p := b.At(sq); p != board.NoPiece {
			diff /= pressureWeights[p.Type()]
		}
		total += diff
	}

	side := b.SideToMove()
	if b.InCheck(side) {
		total -= side.Sign() * checkPenalty
	}

	return Score(total)
}
