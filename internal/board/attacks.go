package board

// RookRelevance returns the squares whose occupancy can change a rook's
// attacks from sq: the inner six files of its rank, then the inner six ranks
// of its file, each skipping sq's own coordinate. The last square of a ray
// has nothing behind it to hide, so it is left out. A rook on the rim still
// sees the rim squares it stands on.
//
// The order is stable. Bit j of an occupancy index refers to element j.
func RookRelevance(sq Square) []Square {
	file, rank := sq.File(), sq.Rank()
	relevant := make([]Square, 0, 12)

	// Same rank
	for f := 1; f <= 6; f++ {
		if f != file {
			relevant = append(relevant, NewSquare(f, rank))
		}
	}

	// Same file
	for r := 1; r <= 6; r++ {
		if r != rank {
			relevant = append(relevant, NewSquare(file, r))
		}
	}

	return relevant
}

// RookMask returns the relevant occupancy mask for a rook at square. It holds
// the same squares as RookRelevance.
func RookMask(sq Square) Bitboard {
	rank := RankMask(sq.Rank()) &^ (FileA | FileH)
	file := FileMask(sq.File()) &^ (Rank1 | Rank8)
	return (rank | file) &^ SquareBB(sq)
}

// RookAttacks computes rook attacks from sq by ray casting. Each ray starts
// on sq itself and stops after marking the first occupied square, so the
// result always contains sq and every first blocker. A piece standing on sq
// does not block its own rays.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	var attacks Bitboard
	file, rank := sq.File(), sq.Rank()
	occupied &^= SquareBB(sq)

	// West
	for f := file; f >= 0; f-- {
		s := NewSquare(f, rank)
		attacks |= SquareBB(s)
		if occupied.IsSet(s) {
			break
		}
	}

	// East
	for f := file; f <= 7; f++ {
		s := NewSquare(f, rank)
		attacks |= SquareBB(s)
		if occupied.IsSet(s) {
			break
		}
	}

	// South
	for r := rank; r >= 0; r-- {
		s := NewSquare(file, r)
		attacks |= SquareBB(s)
		if occupied.IsSet(s) {
			break
		}
	}

	// North
	for r := rank; r <= 7; r++ {
		s := NewSquare(file, r)
		attacks |= SquareBB(s)
		if occupied.IsSet(s) {
			break
		}
	}

	return attacks
}
