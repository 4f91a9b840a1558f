package board

import "fmt"

// Move encodes a chess move in 16 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-14: promotion tag (0 = none, otherwise the PieceType value)
type Move uint16

// NoMove represents an invalid or null move.
const NoMove Move = 0

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion creates a promotion move. promo must be one of Knight,
// Bishop, Rook, Queen; their PieceType values are non-zero so the tag
// doubles as the promotion flag.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo)<<12
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m>>12 != 0
}

// Promotion returns the promotion piece type (only valid if IsPromotion()
// is true).
func (m Move) Promotion() PieceType {
	return PieceType(m >> 12)
}

// String returns the algebraic form of the move (e.g., "e2e4", "e7e8q").
// Knight promotions render as "n".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()

	if m.IsPromotion() {
		promoChars := [6]byte{' ', 'n', 'b', 'r', 'q', ' '}
		s += string(promoChars[m.Promotion()])
	}

	return s
}

// ParseMove parses an algebraic move string: four characters for a normal
// move, five for a promotion. Both "n" and "k" are accepted for a knight
// promotion.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n', 'k':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	return NewMove(from, to), nil
}

// MoveListSize is the inline capacity of a MoveList.
const MoveListSize = 256

// MoveList is a fixed-size list of moves to avoid allocations during search.
type MoveList struct {
	moves [MoveListSize]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear clears the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Index returns the position of m in the list, or -1 if absent.
func (ml *MoveList) Index(m Move) int {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return i
		}
	}
	return -1
}

// Slice returns the moves as a slice backed by the list's array.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
