package magic

import (
	"fmt"

	"github.com/hailam/rookmagic/internal/board"
)

// Table is the attack lookup a move generator builds from a found magic.
type Table struct {
	Square board.Square
	Mask   board.Bitboard // relevant occupancy mask
	Magic  uint64
	Shift  uint

	attacks []board.Bitboard
}

// NewTable fills a lookup table for a rook on sq. It fails with
// ErrCollision if mul sends two entries with different attacks to one slot.
func NewTable(sq board.Square, mul uint64, shift uint, entries []board.Occupancy) (*Table, error) {
	t := &Table{
		Square:  sq,
		Mask:    board.RookMask(sq),
		Magic:   mul,
		Shift:   shift,
		attacks: make([]board.Bitboard, TableSize),
	}

	used := make([]bool, TableSize)
	for _, e := range entries {
		idx := Index(Hash(uint64(e.Occupied), mul, shift))
		if used[idx] && t.attacks[idx] != e.Attacks {
			return nil, fmt.Errorf("%w: square %s, slot %d, occupancy %#x",
				ErrCollision, sq, idx, uint64(e.Occupied))
		}
		used[idx] = true
		t.attacks[idx] = e.Attacks
	}
	return t, nil
}

// Attacks returns the rook attacks from the table's square for any board
// occupancy. Squares outside the relevance mask are ignored.
func (t *Table) Attacks(occupied board.Bitboard) board.Bitboard {
	idx := Index(Hash(uint64(occupied&t.Mask), t.Magic, t.Shift))
	return t.attacks[idx]
}

// Verify checks that mul is a perfect hash for the attack relation of
// entries: equal slots always carry equal attacks.
func Verify(mul uint64, shift uint, entries []board.Occupancy) error {
	seen := make(map[uint32]board.Bitboard, len(entries))
	for _, e := range entries {
		idx := Index(Hash(uint64(e.Occupied), mul, shift))
		if a, ok := seen[idx]; ok && a != e.Attacks {
			return fmt.Errorf("%w: slot %d holds %#x and %#x",
				ErrCollision, idx, uint64(a), uint64(e.Attacks))
		}
		seen[idx] = e.Attacks
	}
	return nil
}
