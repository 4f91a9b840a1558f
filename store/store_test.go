package store

import (
	"testing"

	"github.com/Gompe/chess/board"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer s.Close()

	a := board.StartingPosition()
	b := a.Successor(board.NewMove(board.NewSquare(4, 1), board.NewSquare(4, 3)))

	if _, ok := s.Get(&a); ok {
		t.Fatal("empty store reported a hit")
	}

	if err := s.Put(&a, 1.25); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(&b, -3.5); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if v, ok := s.Get(&a); !ok || v != 1.25 {
		t.Errorf("Get(a) = %v, %v; want 1.25", v, ok)
	}
	if v, ok := s.Get(&b); !ok || v != -3.5 {
		t.Errorf("Get(b) = %v, %v; want -3.5", v, ok)
	}

	if err := s.Put(&a, 2.5); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v, _ := s.Get(&a); v != 2.5 {
		t.Errorf("overwrite: Get(a) = %v, want 2.5", v)
	}
}

func TestStoreOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	b := board.StartingPosition()
	if err := s.Put(&b, 0.5); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Entries survive reopening.
	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer s.Close()

	if v, ok := s.Get(&b); !ok || v != 0.5 {
		t.Errorf("after reopen: Get = %v, %v; want 0.5", v, ok)
	}
}
