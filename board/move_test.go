package board

import "testing"

func TestMovePacking(t *testing.T) {
	for from := Square(0); from < 64; from++ {
		for _, to := range []Square{0, 7, 28, 63} {
			m := NewMove(from, to)
			if m.From() != from || m.To() != to || m.IsPromotion() {
				t.Fatalf("NewMove(%s, %s) decoded as %s-%s", from, to, m.From(), m.To())
			}
		}
	}

	for _, promo := range []PieceType{Knight, Bishop, Rook, Queen} {
		m := NewPromotion(NewSquare(4, 6), NewSquare(4, 7), promo)
		if !m.IsPromotion() || m.Promotion() != promo {
			t.Errorf("promotion %v decoded as %v", promo, m.Promotion())
		}
	}
}

func TestMoveRoundTrip(t *testing.T) {
	moves := []Move{
		NewMove(NewSquare(4, 1), NewSquare(4, 3)), // e2e4
		NewMove(NewSquare(6, 0), NewSquare(5, 2)), // g1f3
		NewPromotion(NewSquare(4, 6), NewSquare(4, 7), Knight),
		NewPromotion(NewSquare(4, 6), NewSquare(4, 7), Bishop),
		NewPromotion(NewSquare(0, 1), NewSquare(0, 0), Rook),
		NewPromotion(NewSquare(7, 6), NewSquare(7, 7), Queen),
	}

	for _, m := range moves {
		parsed, err := ParseMove(m.String())
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("round trip %q: got %v, want %v", m.String(), parsed, m)
		}
	}
}

func TestMoveText(t *testing.T) {
	tests := []struct {
		text string
		want Move
	}{
		{"e2e4", NewMove(NewSquare(4, 1), NewSquare(4, 3))},
		{"e7e8q", NewPromotion(NewSquare(4, 6), NewSquare(4, 7), Queen)},
		{"e7e8n", NewPromotion(NewSquare(4, 6), NewSquare(4, 7), Knight)},
		// The legacy letter for a knight promotion.
		{"e7e8k", NewPromotion(NewSquare(4, 6), NewSquare(4, 7), Knight)},
	}

	for _, tc := range tests {
		got, err := ParseMove(tc.text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", tc.text, err)
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}

	for _, bad := range []string{"", "e2", "e2e", "e2e44", "e2e9", "e7e8x", "x2e4"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) succeeded, want error", bad)
		}
	}
}

func TestMoveList(t *testing.T) {
	ml := NewMoveList()
	if ml.Len() != 0 {
		t.Fatal("new list not empty")
	}

	a := NewMove(0, 1)
	b := NewMove(2, 3)
	ml.Add(a)
	ml.Add(b)

	if ml.Len() != 2 || ml.Get(0) != a || ml.Get(1) != b {
		t.Fatal("Add/Get broken")
	}
	if !ml.Contains(a) || ml.Index(b) != 1 || ml.Index(NewMove(4, 5)) != -1 {
		t.Fatal("Contains/Index broken")
	}

	ml.Swap(0, 1)
	if ml.Get(0) != b {
		t.Fatal("Swap broken")
	}

	ml.Clear()
	if ml.Len() != 0 {
		t.Fatal("Clear broken")
	}
}
