package search

import (
	"sort"

	"github.com/Gompe/chess/board"
)

// mvvKey orders captures by victim value: the more valuable the captured
// piece, the smaller (more negative) the key. Non-captures key to zero and
// trail.
func mvvKey(b *board.Board, m board.Move) int {
	target := b.At(m.To())
	if target == board.NoPiece {
		return 0
	}
	return -target.Type().CaptureValue()
}

// SortMVV stable-sorts the moves most-valuable-victim first. The sort is
// advisory; search correctness does not depend on it.
func SortMVV(b *board.Board, ml *board.MoveList) {
	moves := ml.Slice()
	sort.SliceStable(moves, func(i, j int) bool {
		return mvvKey(b, moves[i]) < mvvKey(b, moves[j])
	})
}

// promoteMove swaps the move to the front of the list if present.
func promoteMove(ml *board.MoveList, m board.Move) {
	if i := ml.Index(m); i > 0 {
		ml.Swap(0, i)
	}
}
