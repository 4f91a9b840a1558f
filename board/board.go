package board

import "strings"

// Board is an immutable position value: the content of the 64 squares plus
// the side to move. Updates produce a new Board; the type is small enough to
// copy freely between search frames.
type Board struct {
	squares [64]Piece
	side    Color
}

// StartingPosition returns the standard chess starting position with White
// to move.
func StartingPosition() Board {
	var b Board

	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.squares[NewSquare(file, 0)] = NewPiece(backRank[file], White)
		b.squares[NewSquare(file, 1)] = NewPiece(Pawn, White)
		b.squares[NewSquare(file, 6)] = NewPiece(Pawn, Black)
		b.squares[NewSquare(file, 7)] = NewPiece(backRank[file], Black)
	}

	b.side = White
	return b
}

// At returns the content of the square, NoPiece when empty.
func (b *Board) At(sq Square) Piece {
	return b.squares[sq]
}

// IsEmpty reports whether the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq] == NoPiece
}

// With returns a copy of the board with the square set to p. The side to
// move is unchanged.
func (b *Board) With(sq Square, p Piece) Board {
	next := *b
	next.squares[sq] = p
	return next
}

// SideToMove returns the color to play.
func (b *Board) SideToMove() Color {
	return b.side
}

// WithSideToMove returns a copy of the board with the side to move set.
func (b *Board) WithSideToMove(c Color) Board {
	next := *b
	next.side = c
	return next
}

// Successor returns the position after the move: the origin square is
// cleared, the destination receives the moving piece (or the promotion
// piece), and the side to move is toggled. Captures are implied by
// overwriting the destination. No legality check is performed; callers must
// only submit moves produced by LegalMoves.
func (b *Board) Successor(m Move) Board {
	next := *b

	piece := b.squares[m.From()]
	if m.IsPromotion() {
		piece = NewPiece(m.Promotion(), b.side)
	}

	next.squares[m.From()] = NoPiece
	next.squares[m.To()] = piece
	next.side = b.side.Other()

	return next
}

// FindKing returns the square of the king of the given color. Reachable
// positions always have exactly one king per side.
func (b *Board) FindKing(c Color) Square {
	king := NewPiece(King, c)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// CountOccupied returns the number of occupied squares.
func (b *Board) CountOccupied() int {
	count := 0
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] != NoPiece {
			count++
		}
	}
	return count
}

// Mirror returns the board with colors swapped and ranks flipped, with the
// opposite side to move. Mirroring twice yields the original board.
func (b *Board) Mirror() Board {
	var next Board
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p != NoPiece {
			p = NewPiece(p.Type(), p.Color().Other())
		}
		next.squares[sq.Mirror()] = p
	}
	next.side = b.side.Other()
	return next
}

// AppendBytes appends a stable 65-byte encoding of the position (64 square
// contents followed by the side to move) and returns the extended slice.
// Two boards are equal iff their encodings are.
func (b *Board) AppendBytes(dst []byte) []byte {
	for sq := Square(0); sq < 64; sq++ {
		dst = append(dst, byte(b.squares[sq]))
	}
	return append(dst, byte(b.side))
}

// String renders the board in the tracing format: a turn line followed by
// eight ruled rows from rank 8 down to rank 1, each cell holding the piece
// letter (uppercase White, lowercase Black) or a space.
func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString(b.side.String())
	sb.WriteString("'s turn\n")

	ruler := strings.Repeat("+---", 8) + "+\n"
	sb.WriteString(ruler)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteString("| ")
			sb.WriteString(b.squares[NewSquare(file, rank)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
		sb.WriteString(ruler)
	}

	return sb.String()
}
