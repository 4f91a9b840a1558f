package eval

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Gompe/chess/board"
)

// rolloutWorkers is the fixed size of the sampling pool.
const rolloutWorkers = 16

// StochasticRollout estimates a position by averaging sampled playouts:
// rolloutWorkers goroutines each run itersPerWorker rollouts that sample
// moves from the policy's distribution, then the partial sums are averaged
// sequentially after the join. The policy and evaluator are shared
// read-only across the pool; the only per-worker mutable state is the RNG.
// No worker outlives a call to Evaluate.
type StochasticRollout struct {
	policy         Policy
	evaluator      Evaluator
	maxDepth       int
	itersPerWorker int

	seed  int64
	calls atomic.Int64
}

// NewStochasticRollout returns the sampling rollout evaluator. maxDepth and
// itersPerWorker must be positive. Results are deterministic for a fixed
// seed within a process run.
func NewStochasticRollout(policy Policy, evaluator Evaluator, maxDepth, itersPerWorker int, seed int64) *StochasticRollout {
	if maxDepth <= 0 {
		panic("eval: rollout depth must be positive")
	}
	if itersPerWorker <= 0 {
		panic("eval: iterations per worker must be positive")
	}
	return &StochasticRollout{
		policy:         policy,
		evaluator:      evaluator,
		maxDepth:       maxDepth,
		itersPerWorker: itersPerWorker,
		seed:           seed,
	}
}

func (e *StochasticRollout) Name() string {
	return fmt.Sprintf("StochasticRollout(%s)", e.evaluator.Name())
}

func (e *StochasticRollout) Evaluate(b *board.Board) Score {
	call := e.calls.Add(1)

	var sums [rolloutWorkers]float64
	var g errgroup.Group

	for w := 0; w < rolloutWorkers; w++ {
		w := w
		g.Go(func() error {
			rng := rand.New(rand.NewSource(e.seed + call*rolloutWorkers + int64(w)))
			var sum float64
			for i := 0; i < e.itersPerWorker; i++ {
				sum += float64(e.sampleRollout(b, rng))
			}
			sums[w] = sum / float64(e.itersPerWorker)
			return nil
		})
	}
	g.Wait()

	var total float64
	for _, s := range sums {
		total += s
	}
	return Score(total / rolloutWorkers)
}

// sampleRollout plays one playout, sampling each move from the policy.
func (e *StochasticRollout) sampleRollout(b *board.Board, rng *rand.Rand) Score {
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
		cur = cur.Successor(moves.Get(sampleIndex(priors, rng)))
	}

	return e.evaluator.Evaluate(&cur)
}

// sampleIndex draws an index from the distribution by inverse transform.
func sampleIndex(priors []float64, rng *rand.Rand) int {
	target := rng.Float64()
	var acc float64
	for i, p := range priors {
		acc += p
		if target < acc {
			return i
		}
	}
	return len(priors) - 1
}
