package eval

import (
	"fmt"

	"github.com/Gompe/chess/board"
)

// Exchange values by PieceType for the capture adjustment. The king is
// excluded; it can never be taken.
var captureWeights = [6]float64{1, 3, 3.1, 5, 9, 0}

// Capture adjusts an evaluator by one ply of hanging-piece analysis: among
// the squares holding a piece of the side that just moved and attacked more
// often than defended, the most valuable victim is assumed lost, and the
// score shifts toward the side to move by that victim's value. Pins are
// ignored; this is a static probe, not a search.
type Capture struct {
	inner Evaluator
}

// NewCapture returns the capture-adjusting wrapper.
func NewCapture(inner Evaluator) *Capture {
	return &Capture{inner: inner}
}

func (e *Capture) Name() string {
	return fmt.Sprintf("Capture(%s)", e.inner.Name())
}

func (e *Capture) Evaluate(b *board.Board) Score {
	base := e.inner.Evaluate(b)
	adjusted := base

	// Net attack count and signed occupant value per square.
	var pressure [64]int
	var content [64]float64
	var buf [28]board.Square

	for sq := board.Square(0); sq < 64; sq++ {
		p := b.At(sq)
		if p == board.NoPiece {
			continue
		}

		content[sq] = p.Color().Sign() * captureWeights[p.Type()]

		delta := 1
		if p.Color() == board.Black {
			delta = -1
		}
		for _, att := range b.AttackedSquares(buf[:0], sq) {
			pressure[att] += delta
		}
	}

	// The player who just moved may have left pieces hanging; assume the
	// side to move collects the most favourable of them.
	if b.SideToMove() == board.White {
		for sq := 0; sq < 64; sq++ {
			if pressure[sq] > 0 && content[sq] < 0 {
				if next := base - Score(content[sq]); next > adjusted {
					adjusted = next
				}
			}
		}
	} else {
		for sq := 0; sq < 64; sq++ {
			if pressure[sq] < 0 && content[sq] > 0 {
				if next := base - Score(content[sq]); next < adjusted {
					adjusted = next
				}
			}
		}
	}

	return adjusted
}
