package eval

import (
	"fmt"
	"math"

	"github.com/Gompe/chess/board"
)

// Trivial evaluates every board to zero. Useful as the base of combinators
// that measure deltas, such as the noise probe of the quiescence search.
type Trivial struct{}

// NewTrivial returns the zero evaluator.
func NewTrivial() *Trivial {
	return &Trivial{}
}

func (e *Trivial) Name() string { return "Trivial" }

func (e *Trivial) Evaluate(b *board.Board) Score { return 0 }

// Linear combines two evaluators as w1*E1 + w2*E2.
type Linear struct {
	first  Evaluator
	second Evaluator
	coef   [2]float64
}

// NewLinear returns the weighted sum of two evaluators.
func NewLinear(first, second Evaluator, coef [2]float64) *Linear {
	return &Linear{first: first, second: second, coef: coef}
}

func (e *Linear) Name() string {
	return fmt.Sprintf("Linear(%s, %s)", e.first.Name(), e.second.Name())
}

func (e *Linear) Evaluate(b *board.Board) Score {
	return Score(e.coef[0])*e.first.Evaluate(b) + Score(e.coef[1])*e.second.Evaluate(b)
}

// Clamp squashes an evaluator into (-threshold, threshold) via
// threshold*tanh(E/threshold), keeping static scores bounded away from the
// mate sentinels.
type Clamp struct {
	inner     Evaluator
	threshold float64
}

// NewClamp returns the squashing wrapper. threshold must be positive.
func NewClamp(inner Evaluator, threshold float64) *Clamp {
	if threshold <= 0 {
		panic("eval: clamp threshold must be positive")
	}
	return &Clamp{inner: inner, threshold: threshold}
}

func (e *Clamp) Name() string {
	return fmt.Sprintf("Clamp(%s)", e.inner.Name())
}

func (e *Clamp) Evaluate(b *board.Board) Score {
	v := float64(e.inner.Evaluate(b))
	return Score(e.threshold * math.Tanh(v/e.threshold))
}

// Threshold saturates an evaluator to the terminal scores outside
// [-threshold, threshold] and passes it through inside.
type Threshold struct {
	inner     Evaluator
	threshold Score
}

// NewThreshold returns the saturating wrapper.
func NewThreshold(inner Evaluator, threshold Score) *Threshold {
	return &Threshold{inner: inner, threshold: threshold}
}

func (e *Threshold) Name() string {
	return fmt.Sprintf("Threshold(%s)", e.inner.Name())
}

func (e *Threshold) Evaluate(b *board.Board) Score {
	v := e.inner.Evaluate(b)
	switch {
	case v > e.threshold:
		return WhiteWon
	case v < -e.threshold:
		return BlackWon
	default:
		return v
	}
}

// Negate flips the sign of an evaluator.
type Negate struct {
	inner Evaluator
}

// NewNegate returns the negating wrapper.
func NewNegate(inner Evaluator) *Negate {
	return &Negate{inner: inner}
}

func (e *Negate) Name() string {
	return fmt.Sprintf("Negate(%s)", e.inner.Name())
}

func (e *Negate) Evaluate(b *board.Board) Score {
	return -e.inner.Evaluate(b)
}
