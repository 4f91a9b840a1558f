// Package store persists evaluation scores in BadgerDB so expensive
// evaluator trees can be memoised across processes. Only evaluator output is
// stored; search state never touches disk.
package store

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"

	"github.com/Gompe/chess/board"
)

// Store wraps a Badger database holding board -> score entries. Keys are
// Zobrist hashes; every value carries an xxhash fingerprint of the full
// board encoding, the on-disk analogue of the in-memory map storing the
// board itself, so a Zobrist collision reads as a miss instead of a wrong
// score.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a score store in the directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// OpenInMemory opens a store with no backing directory, for tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// fingerprint hashes the full board encoding.
func fingerprint(b *board.Board) uint64 {
	var buf [65]byte
	return xxhash.Sum64(b.AppendBytes(buf[:0]))
}

func storeKey(b *board.Board) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], b.Hash())
	return k[:]
}

// Get returns the stored score for the board. Misses, fingerprint
// mismatches, and malformed values all report false.
func (s *Store) Get(b *board.Board) (float64, bool) {
	var score float64
	found := false
	fp := fingerprint(b)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(b))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 16 {
				return nil
			}
			if binary.BigEndian.Uint64(val[:8]) != fp {
				return nil
			}
			score = math.Float64frombits(binary.BigEndian.Uint64(val[8:]))
			found = true
			return nil
		})
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return 0, false
	}

	return score, found
}

// Put stores the score for the board, overwriting any previous entry.
func (s *Store) Put(b *board.Board, score float64) error {
	var val [16]byte
	binary.BigEndian.PutUint64(val[:8], fingerprint(b))
	binary.BigEndian.PutUint64(val[8:], math.Float64bits(score))

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storeKey(b), val[:])
	})
}
