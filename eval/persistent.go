package eval

import (
	"fmt"
	"log"

	"github.com/Gompe/chess/board"
	"github.com/Gompe/chess/store"
)

// PersistentCache memoises an evaluator in an on-disk score store, so a
// slow evaluator tree warmed in one process is warm in the next. Failed
// writes are logged and the evaluation proceeds; the store is an
// accelerator, never a source of truth.
type PersistentCache struct {
	inner Evaluator
	store *store.Store
}

// NewPersistentCache returns the disk-backed memoising wrapper.
func NewPersistentCache(inner Evaluator, s *store.Store) *PersistentCache {
	return &PersistentCache{inner: inner, store: s}
}

func (e *PersistentCache) Name() string {
	return fmt.Sprintf("PersistentCache(%s)", e.inner.Name())
}

func (e *PersistentCache) Evaluate(b *board.Board) Score {
	if v, ok := e.store.Get(b); ok {
		return Score(v)
	}

	v := e.inner.Evaluate(b)
	if err := e.store.Put(b, float64(v)); err != nil {
		log.Printf("[Eval] persistent cache write failed: %v", err)
	}
	return v
}
