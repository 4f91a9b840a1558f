package eval

import (
	"fmt"

	"github.com/Gompe/chess/board"
)

// Cache memoises an evaluator by Zobrist key. The map lives behind the
// evaluator's pointer receiver; evaluation mutates it, so a Cache must stay
// on a single goroutine. Wrap the inner evaluator per rollout worker instead
// of sharing one Cache when parallelism is needed.
type Cache struct {
	inner Evaluator
	seen  *board.ZobristMap[Score]
}

// NewCache returns the memoising wrapper.
func NewCache(inner Evaluator) *Cache {
	return &Cache{inner: inner, seen: board.NewZobristMap[Score]()}
}

func (e *Cache) Name() string {
	return fmt.Sprintf("Cache(%s)", e.inner.Name())
}

func (e *Cache) Evaluate(b *board.Board) Score {
	if v, ok := e.seen.Get(b); ok {
		return v
	}

	v := e.inner.Evaluate(b)
	e.seen.Put(b, v)
	return v
}

// Len returns the number of memoised positions.
func (e *Cache) Len() int {
	return e.seen.Len()
}
