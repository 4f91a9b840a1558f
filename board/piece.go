package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// Sign returns the score orientation of the color: +1 for White, -1 for Black.
func (c Color) Sign() float64 {
	if c == White {
		return 1
	}
	return -1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// CaptureValue returns the move-ordering value of the piece type
// (pawn=1 ... queen=5, king=6). Used as the MVV sort key.
func (pt PieceType) CaptureValue() int {
	return int(pt) + 1
}

// Piece combines PieceType and Color into a single byte.
// Encoded as 1 + pieceType + color*6, so a real piece is never zero and
// the zero value is NoPiece. A square's content fits in one byte.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1 + Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = 1 + Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = 1 + Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = 1 + Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = 1 + Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = 1 + Piece(King) + Piece(White)*6
	BlackPawn   Piece = 1 + Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = 1 + Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = 1 + Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = 1 + Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = 1 + Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = 1 + Piece(King) + Piece(Black)*6
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	return 1 + Piece(pt) + Piece(c)*6
}

// IsPiece reports whether p is a real piece (not NoPiece).
func (p Piece) IsPiece() bool {
	return p != NoPiece
}

// Type returns the PieceType of the piece. Only valid for real pieces.
func (p Piece) Type() PieceType {
	return PieceType((p - 1) % 6)
}

// Color returns the Color of the piece. Only valid for real pieces.
func (p Piece) Color() Color {
	return Color((p - 1) / 6)
}

// String returns the piece letter, uppercase for White and lowercase for
// Black, or a space for NoPiece.
func (p Piece) String() string {
	if p == NoPiece {
		return " "
	}
	chars := "PNBRQKpnbrqk"
	return string(chars[p-1])
}
