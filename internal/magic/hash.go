// Package magic searches for multiply-shift magic numbers that compress a
// rook's relevant occupancies into a fixed-size attack table.
package magic

const (
	// Shift is applied to an occupancy before it is multiplied.
	Shift = 10

	// TableBits is log2 of TableSize. Index keeps the top TableBits bits of a
	// hash, which only partitions [0, TableSize) because TableSize is an
	// exact power of two.
	TableBits = 16
	TableSize = 1 << TableBits
)

// Hash compresses an occupancy mask: (m >> shift) * mul, wrapping.
func Hash(m, mul uint64, shift uint) uint64 {
	return (m >> shift) * mul
}

// Index reduces a hash to a table slot in [0, TableSize).
func Index(h uint64) uint32 {
	return uint32(h >> (64 - TableBits))
}
