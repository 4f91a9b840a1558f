package eval

import (
	"fmt"

	"github.com/Gompe/chess/board"
)

// Rollout plays a position forward under the policy's greedy argmax for up
// to maxDepth plies or until the game ends, then evaluates the reached
// position. Terminal positions score the unit sentinels +1/-1/0 rather than
// the evaluator's terminal scores, matching the rollout value scale.
type Rollout struct {
	policy    Policy
	evaluator Evaluator
	maxDepth  int
}

// NewRollout returns the greedy rollout evaluator. maxDepth must be
// positive.
func NewRollout(policy Policy, evaluator Evaluator, maxDepth int) *Rollout {
	if maxDepth <= 0 {
		panic("eval: rollout depth must be positive")
	}
	return &Rollout{policy: policy, evaluator: evaluator, maxDepth: maxDepth}
}

func (e *Rollout) Name() string {
	return fmt.Sprintf("Rollout(%s)", e.evaluator.Name())
}

func (e *Rollout) Evaluate(b *board.Board) Score {
	cur := *b

	for depth := 0; depth < e.maxDepth; depth++ {
		moves := cur.LegalMoves(cur.SideToMove())

		switch cur.StatusFromMoves(moves) {
		case board.WhiteWon:
			return 1
		case board.BlackWon:
			return -1
		case board.Draw:
			return 0
		}

		priors := e.policy.Priors(&cur, moves)
		best := 0
		for i := 1; i < len(priors); i++ {
			if priors[i] > priors[best] {
				best = i
			}
		}

		cur = cur.Successor(moves.Get(best))
	}

	return e.evaluator.Evaluate(&cur)
}
