package board

// Direction tables, expressed as (file, rank) deltas.
var (
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
)

// pawnDir returns the forward rank delta for the color.
func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// appendRay appends the squares reachable from sq in the given direction,
// stopping at (and including) the first occupied square.
func (b *Board) appendRay(dst []Square, sq Square, df, dr int) []Square {
	for cur, ok := sq.Offset(df, dr); ok; cur, ok = cur.Offset(df, dr) {
		dst = append(dst, cur)
		if b.squares[cur] != NoPiece {
			break
		}
	}
	return dst
}

// AttackedSquares appends to dst every square attacked by the piece on sq
// and returns the extended slice. An empty square attacks nothing. Slider
// rays are inclusive of the first occupied square, so defended friendly
// pieces and capture targets both appear. Pawns attack only their two
// forward diagonals; pushes are not attacks.
func (b *Board) AttackedSquares(dst []Square, sq Square) []Square {
	p := b.squares[sq]
	if p == NoPiece {
		return dst
	}

	switch p.Type() {
	case Rook:
		for _, d := range rookDirs {
			dst = b.appendRay(dst, sq, d[0], d[1])
		}
	case Bishop:
		for _, d := range bishopDirs {
			dst = b.appendRay(dst, sq, d[0], d[1])
		}
	case Queen:
		for _, d := range rookDirs {
			dst = b.appendRay(dst, sq, d[0], d[1])
		}
		for _, d := range bishopDirs {
			dst = b.appendRay(dst, sq, d[0], d[1])
		}
	case Knight:
		for _, d := range knightOffsets {
			if to, ok := sq.Offset(d[0], d[1]); ok {
				dst = append(dst, to)
			}
		}
	case King:
		for _, d := range kingOffsets {
			if to, ok := sq.Offset(d[0], d[1]); ok {
				dst = append(dst, to)
			}
		}
	case Pawn:
		dr := pawnDir(p.Color())
		if to, ok := sq.Offset(-1, dr); ok {
			dst = append(dst, to)
		}
		if to, ok := sq.Offset(1, dr); ok {
			dst = append(dst, to)
		}
	}

	return dst
}

// IsSquareAttacked reports whether any piece of the given color attacks sq.
// Probes outward from sq and short-circuits on the first hit.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns attack sq from one rank behind their push direction.
	dr := -pawnDir(by)
	pawn := NewPiece(Pawn, by)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, dr); ok && b.squares[from] == pawn {
			return true
		}
	}

	knight := NewPiece(Knight, by)
	for _, d := range knightOffsets {
		if from, ok := sq.Offset(d[0], d[1]); ok && b.squares[from] == knight {
			return true
		}
	}

	king := NewPiece(King, by)
	for _, d := range kingOffsets {
		if from, ok := sq.Offset(d[0], d[1]); ok && b.squares[from] == king {
			return true
		}
	}

	rook := NewPiece(Rook, by)
	queen := NewPiece(Queen, by)
	for _, d := range rookDirs {
		if p := b.firstAlongRay(sq, d[0], d[1]); p == rook || p == queen {
			return true
		}
	}

	bishop := NewPiece(Bishop, by)
	for _, d := range bishopDirs {
		if p := b.firstAlongRay(sq, d[0], d[1]); p == bishop || p == queen {
			return true
		}
	}

	return false
}

// firstAlongRay returns the first piece encountered from sq in the given
// direction, NoPiece when the ray runs off the board empty.
func (b *Board) firstAlongRay(sq Square, df, dr int) Piece {
	for cur, ok := sq.Offset(df, dr); ok; cur, ok = cur.Offset(df, dr) {
		if p := b.squares[cur]; p != NoPiece {
			return p
		}
	}
	return NoPiece
}

// InCheck reports whether the king of the given color is attacked.
func (b *Board) InCheck(c Color) bool {
	return b.IsSquareAttacked(b.FindKing(c), c.Other())
}

// addPawnTarget records a pawn move to the destination, expanding into the
// four promotion moves when the destination is the last rank.
func (b *Board) addPawnTarget(ml *MoveList, c Color, from, to Square) {
	if to.RelativeRank(c) == 7 {
		ml.Add(NewPromotion(from, to, Knight))
		ml.Add(NewPromotion(from, to, Bishop))
		ml.Add(NewPromotion(from, to, Rook))
		ml.Add(NewPromotion(from, to, Queen))
		return
	}
	ml.Add(NewMove(from, to))
}

// pseudoMoves appends the pseudo-legal moves of the piece on sq.
func (b *Board) pseudoMoves(ml *MoveList, sq Square) {
	p := b.squares[sq]
	c := p.Color()

	if p.Type() == Pawn {
		dr := pawnDir(c)

		if front, ok := sq.Offset(0, dr); ok && b.squares[front] == NoPiece {
			b.addPawnTarget(ml, c, sq, front)
			if sq.RelativeRank(c) == 1 {
				if jump, ok := front.Offset(0, dr); ok && b.squares[jump] == NoPiece {
					ml.Add(NewMove(sq, jump))
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			if to, ok := sq.Offset(df, dr); ok {
				if target := b.squares[to]; target != NoPiece && target.Color() != c {
					b.addPawnTarget(ml, c, sq, to)
				}
			}
		}
		return
	}

	var buf [28]Square
	for _, to := range b.AttackedSquares(buf[:0], sq) {
		if target := b.squares[to]; target == NoPiece || target.Color() != c {
			ml.Add(NewMove(sq, to))
		}
	}
}

// LegalMoves returns every legal move for the given color: pseudo-legal
// generation followed by the king-safety filter. The order is deterministic
// (ascending origin square, fixed direction order).
func (b *Board) LegalMoves(c Color) *MoveList {
	pseudo := NewMoveList()
	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece && p.Color() == c {
			b.pseudoMoves(pseudo, sq)
		}
	}

	legal := NewMoveList()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		next := b.Successor(m)
		if !next.InCheck(c) {
			legal.Add(m)
		}
	}
	return legal
}
