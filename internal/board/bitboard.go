package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileH Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank8 Bitboard = 0xFF00000000000000
)

const Empty Bitboard = 0

// FileMask returns the mask of the given file (0-7).
func FileMask(file int) Bitboard {
	return FileA << uint(file)
}

// RankMask returns the mask of the given rank (0-7).
func RankMask(rank int) Bitboard {
	return Rank1 << (8 * uint(rank))
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// SquaresBB returns a bitboard with every listed square set.
func SquaresBB(squares []Square) Bitboard {
	var b Bitboard
	for _, sq := range squares {
		b |= SquareBB(sq)
	}
	return b
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1 // Clear the LSB
	return sq
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}

// String returns a visual representation of the bitboard, rank 8 first.
func (b Bitboard) String() string {
	var s strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&s, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				s.WriteString("X ")
			} else {
				s.WriteString(". ")
			}
		}
		s.WriteString("\n")
	}
	s.WriteString("  a b c d e f g h\n")
	return s.String()
}

// Bits returns the raw 64-bit pattern, most significant bit first.
func (b Bitboard) Bits() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// FormatMask renders a mask with its decimal value on a header line.
func FormatMask(b Bitboard) string {
	return fmt.Sprintf("MASK: %d\n%s", uint64(b), b)
}
