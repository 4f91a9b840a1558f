package search

import (
	"fmt"

	"github.com/Gompe/chess/eval"
)

type evalKind uint8

const (
	kindExact evalKind = iota
	kindMaximizerMate
	kindMinimizerMate
)

// Eval is a mate-aware search value: an exact score, or a forced mate for
// the maximizer or minimizer a known number of plies away. The total order
// puts every MaximizerMate above every other value (sooner mates first),
// every MinimizerMate below (sooner mates last), and compares exact values
// as floats.
type Eval struct {
	kind  evalKind
	plies int
	score eval.Score
}

// Exact wraps a static score.
func Exact(s eval.Score) Eval {
	return Eval{kind: kindExact, score: s}
}

// MaximizerMate is a forced mate by the maximizer in the given number of
// plies.
func MaximizerMate(plies int) Eval {
	return Eval{kind: kindMaximizerMate, plies: plies}
}

// MinimizerMate is a forced mate by the minimizer in the given number of
// plies.
func MinimizerMate(plies int) Eval {
	return Eval{kind: kindMinimizerMate, plies: plies}
}

// Sentinels bracketing every reachable value, the tagged analogue of the
// float searchers' +/-1001.
var (
	evalMax = MaximizerMate(-1)
	evalMin = MinimizerMate(-1)
)

// IsMate reports whether the value is a forced mate, and for whom.
func (v Eval) IsMate() (maximizer bool, plies int, ok bool) {
	switch v.kind {
	case kindMaximizerMate:
		return true, v.plies, true
	case kindMinimizerMate:
		return false, v.plies, true
	default:
		return false, 0, false
	}
}

// Score returns the exact score; zero for mate values.
func (v Eval) Score() eval.Score {
	return v.score
}

// Neg flips the value: mates swap sides at the same distance, exact scores
// negate.
func (v Eval) Neg() Eval {
	switch v.kind {
	case kindMaximizerMate:
		return MinimizerMate(v.plies)
	case kindMinimizerMate:
		return MaximizerMate(v.plies)
	default:
		return Exact(-v.score)
	}
}

// Forward propagates the value one ply toward the root in the negamax
// frame: mates swap sides and grow one ply, exact scores negate.
func (v Eval) Forward() Eval {
	switch v.kind {
	case kindMaximizerMate:
		return MinimizerMate(v.plies + 1)
	case kindMinimizerMate:
		return MaximizerMate(v.plies + 1)
	default:
		return Exact(-v.score)
	}
}

// Backward is the inverse of Forward, used to push window bounds down to a
// child node.
func (v Eval) Backward() Eval {
	switch v.kind {
	case kindMaximizerMate:
		return MinimizerMate(v.plies - 1)
	case kindMinimizerMate:
		return MaximizerMate(v.plies - 1)
	default:
		return Exact(-v.score)
	}
}

// Cmp returns -1, 0 or +1 as v is ordered below, equal to, or above other.
func (v Eval) Cmp(other Eval) int {
	switch v.kind {
	case kindMaximizerMate:
		if other.kind == kindMaximizerMate {
			// The sooner mate dominates.
			return cmpInt(other.plies, v.plies)
		}
		return 1
	case kindMinimizerMate:
		if other.kind == kindMinimizerMate {
			return cmpInt(v.plies, other.plies)
		}
		return -1
	default:
		switch other.kind {
		case kindMaximizerMate:
			return -1
		case kindMinimizerMate:
			return 1
		default:
			switch {
			case v.score < other.score:
				return -1
			case v.score > other.score:
				return 1
			default:
				return 0
			}
		}
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String renders the value for logs: a float, or "#N" / "#-N" for mates.
func (v Eval) String() string {
	switch v.kind {
	case kindMaximizerMate:
		return fmt.Sprintf("#%d", v.plies)
	case kindMinimizerMate:
		return fmt.Sprintf("#-%d", v.plies)
	default:
		return fmt.Sprintf("%.2f", float64(v.score))
	}
}
