package board

// Zobrist hash keys for position hashing: one key per (piece, square) pair
// plus one for the side to move. Generated by a PRNG with a fixed seed so
// keys are identical across runs.

var (
	zobristPiece      [12][64]uint64
	zobristSideToMove uint64
)

// xorshift64* step, used as the stable hash step for key generation.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func init() {
	rng := prng{state: 0x7F4A8E2D2A19A0C3}

	zobristSideToMove = rng.next()
	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[piece][sq] = rng.next()
		}
	}
}

// Hash returns the Zobrist key of the position: the side-to-move key is
// XOR-ed in when White is to play, then one key per occupied square.
func (b *Board) Hash() uint64 {
	var h uint64
	if b.side == White {
		h = zobristSideToMove
	}

	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			h ^= zobristPiece[p-1][sq]
		}
	}

	return h
}

// ZobristMap maps boards to values of type V, keyed by the position's
// Zobrist hash. Keys are 64-bit and can collide, so each entry also stores
// the board that produced it and Get compares boards on hit. Not safe for
// concurrent use; every search owns its map.
type ZobristMap[V any] struct {
	entries map[uint64]zobristEntry[V]
}

type zobristEntry[V any] struct {
	board Board
	value V
}

// NewZobristMap creates an empty map.
func NewZobristMap[V any]() *ZobristMap[V] {
	return &ZobristMap[V]{entries: make(map[uint64]zobristEntry[V])}
}

// Get returns the value stored for the board, and false on a miss or on a
// hash collision with a different board.
func (zm *ZobristMap[V]) Get(b *Board) (V, bool) {
	e, ok := zm.entries[b.Hash()]
	if !ok || e.board != *b {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores the value for the board, replacing any previous entry with the
// same hash.
func (zm *ZobristMap[V]) Put(b *Board, v V) {
	zm.entries[b.Hash()] = zobristEntry[V]{board: *b, value: v}
}

// Len returns the number of stored entries.
func (zm *ZobristMap[V]) Len() int {
	return len(zm.entries)
}

// Clear removes all entries.
func (zm *ZobristMap[V]) Clear() {
	clear(zm.entries)
}
