package board

// Occupancy pairs one blocker configuration with the attacks it produces.
type Occupancy struct {
	Occupied Bitboard
	Attacks  Bitboard
}

// OccupancyAt converts an index to an occupancy bitboard: bit j of index
// marks relevant[j] as occupied.
func OccupancyAt(index int, relevant []Square) Bitboard {
	var occ Bitboard
	for j, sq := range relevant {
		if index&(1<<j) != 0 {
			occ |= SquareBB(sq)
		}
	}
	return occ
}

// EnumerateOccupancies returns all 2^len(relevant) blocker configurations of
// the relevant squares together with the rook attacks from sq for each, in
// binary counting order. Occupancies are pairwise distinct.
func EnumerateOccupancies(sq Square, relevant []Square) []Occupancy {
	n := 1 << len(relevant)
	table := make([]Occupancy, n)
	for i := 0; i < n; i++ {
		occ := OccupancyAt(i, relevant)
		table[i] = Occupancy{
			Occupied: occ,
			Attacks:  RookAttacks(sq, occ),
		}
	}
	return table
}
