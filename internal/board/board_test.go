package board

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSquareAt(t *testing.T) {
	tests := []struct {
		row, col int
		want     Square
		wantErr  bool
	}{
		{0, 0, A1, false},
		{0, 7, H1, false},
		{3, 3, D4, false},
		{7, 0, A8, false},
		{7, 7, H8, false},
		{-1, 0, NoSquare, true},
		{0, 8, NoSquare, true},
		{8, 8, NoSquare, true},
	}

	for _, tc := range tests {
		got, err := SquareAt(tc.row, tc.col)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidSquare) {
				t.Errorf("SquareAt(%d, %d): expected ErrInvalidSquare, got %v", tc.row, tc.col, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SquareAt(%d, %d): unexpected error %v", tc.row, tc.col, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SquareAt(%d, %d) = %s, want %s", tc.row, tc.col, got, tc.want)
		}
		if got.Rank() != tc.row || got.File() != tc.col {
			t.Errorf("SquareAt(%d, %d) round trip gave (%d, %d)", tc.row, tc.col, got.Rank(), got.File())
		}
	}
}

func TestRookRelevanceSize(t *testing.T) {
	tests := []struct {
		row, col int
		want     int
	}{
		{3, 3, 10},
		{1, 6, 10},
		{2, 5, 10},
		{6, 6, 10},
		{0, 0, 12},
		{7, 7, 12},
		{0, 3, 11},
		{4, 7, 11},
	}

	for _, tc := range tests {
		sq, _ := SquareAt(tc.row, tc.col)
		got := len(RookRelevance(sq))
		if got != tc.want {
			t.Errorf("RookRelevance(%d, %d): expected %d squares, got %d", tc.row, tc.col, tc.want, got)
		}
	}
}

func TestRookRelevanceOrder(t *testing.T) {
	// b4 c4 e4 f4 g4, then d2 d3 d5 d6 d7
	want := []Square{25, 26, 28, 29, 30, 11, 19, 35, 43, 51}
	got := RookRelevance(D4)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RookRelevance(d4) = %v, want %v", got, want)
	}
}

// TestRookRelevanceExcludesRayEnds checks the mask against the far end of
// every ray. Rim squares the rook stands beside stay relevant.
func TestRookRelevanceExcludesRayEnds(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		file, rank := sq.File(), sq.Rank()
		mask := RookMask(sq)

		if mask != SquaresBB(RookRelevance(sq)) {
			t.Errorf("%s: RookMask disagrees with RookRelevance:\n%s", sq, mask)
		}
		if mask.PopCount() != len(RookRelevance(sq)) {
			t.Errorf("%s: relevance contains duplicates", sq)
		}
		if mask.IsSet(sq) {
			t.Errorf("%s: relevance mask contains the target square", sq)
		}
		if mask&^(RankMask(rank)|FileMask(file)) != 0 {
			t.Errorf("%s: relevance mask leaves the rank and file", sq)
		}

		ends := SquaresBB([]Square{
			NewSquare(0, rank), NewSquare(7, rank),
			NewSquare(file, 0), NewSquare(file, 7),
		})
		if mask&ends != 0 {
			t.Errorf("%s: relevance mask holds a ray end:\n%s", sq, mask&ends)
		}
	}

	// h8 keeps b8..g8 and h2..h7.
	want := SquaresBB([]Square{57, 58, 59, 60, 61, 62, 15, 23, 31, 39, 47, 55})
	if got := RookMask(H8); got != want {
		t.Errorf("h8 mask\n%s\nwant\n%s", got, want)
	}
}

func TestEnumerateOccupancies(t *testing.T) {
	for _, sq := range []Square{A1, D4, H8, NewSquare(5, 1)} {
		rel := RookRelevance(sq)
		table := EnumerateOccupancies(sq, rel)

		if len(table) != 1<<len(rel) {
			t.Errorf("%s: expected %d occupancies, got %d", sq, 1<<len(rel), len(table))
		}

		seen := make(map[Bitboard]bool, len(table))
		mask := RookMask(sq)
		for _, e := range table {
			if seen[e.Occupied] {
				t.Fatalf("%s: duplicate occupancy %#x", sq, uint64(e.Occupied))
			}
			seen[e.Occupied] = true
			if e.Occupied&^mask != 0 {
				t.Fatalf("%s: occupancy %#x outside relevance mask", sq, uint64(e.Occupied))
			}
		}

		// Carry-Rippler traversal visits every subset of the mask exactly once.
		count := 0
		sub := Empty
		for {
			if !seen[sub] {
				t.Fatalf("%s: subset %#x missing from enumeration", sq, uint64(sub))
			}
			count++
			sub = (sub - mask) & mask
			if sub == 0 {
				break
			}
		}
		if count != len(table) {
			t.Errorf("%s: Carry-Rippler visited %d subsets, enumeration has %d", sq, count, len(table))
		}
	}
}

func TestEnumerateOccupanciesDeterministic(t *testing.T) {
	rel := RookRelevance(D4)
	first := EnumerateOccupancies(D4, rel)
	second := EnumerateOccupancies(D4, RookRelevance(D4))
	if !reflect.DeepEqual(first, second) {
		t.Error("EnumerateOccupancies is not deterministic")
	}
	if first[0].Occupied != Empty {
		t.Errorf("Expected index 0 to be the empty board, got %#x", uint64(first[0].Occupied))
	}
	if first[1].Occupied != SquareBB(rel[0]) {
		t.Errorf("Expected index 1 to occupy %s only", rel[0])
	}
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		want := RankMask(sq.Rank()) | FileMask(sq.File())
		got := RookAttacks(sq, Empty)
		if got != want {
			t.Errorf("%s: empty board attacks\n%s\nwant\n%s", sq, got, want)
		}
	}
}

func TestRookAttacksBlockers(t *testing.T) {
	// Blockers on b4, f4, d2 and d7 around a rook on d4.
	occ := SquareBB(25) | SquareBB(29) | SquareBB(11) | SquareBB(51)
	want := SquaresBB([]Square{
		D4,
		26, 25, // c4 b4
		28, 29, // e4 f4
		19, 11, // d3 d2
		35, 43, 51, // d5 d6 d7
	})
	got := RookAttacks(D4, occ)
	if got != want {
		t.Errorf("attacks\n%s\nwant\n%s", got, want)
	}
}

// TestRookAttacksStopRule walks every ray for every occupancy of a few squares
// and checks the attacked run ends exactly at the first blocker or the edge.
func TestRookAttacksStopRule(t *testing.T) {
	dirs := []struct{ df, dr int }{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for _, sq := range []Square{A1, D4, NewSquare(6, 2), H8} {
		for _, e := range EnumerateOccupancies(sq, RookRelevance(sq)) {
			if !e.Attacks.IsSet(sq) {
				t.Fatalf("%s: attacks do not contain the origin", sq)
			}
			var rays Bitboard
			for _, d := range dirs {
				f, r := sq.File()+d.df, sq.Rank()+d.dr
				blocked := false
				for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
					s := NewSquare(f, r)
					if blocked && e.Attacks.IsSet(s) {
						t.Fatalf("%s occ %#x: %s attacked past a blocker", sq, uint64(e.Occupied), s)
					}
					if !blocked {
						if !e.Attacks.IsSet(s) {
							t.Fatalf("%s occ %#x: %s not attacked before first blocker", sq, uint64(e.Occupied), s)
						}
						rays |= SquareBB(s)
						blocked = e.Occupied.IsSet(s)
					}
					f, r = f+d.df, r+d.dr
				}
			}
			if e.Attacks != rays|SquareBB(sq) {
				t.Fatalf("%s occ %#x: attacks leave the four rays", sq, uint64(e.Occupied))
			}
		}
	}
}

func TestBitboardRendering(t *testing.T) {
	b := SquareBB(A1) | SquareBB(H8)

	s := b.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("Expected 9 lines, got %d:\n%s", len(lines), s)
	}
	if lines[0] != "8 . . . . . . . X " {
		t.Errorf("Unexpected rank 8 line %q", lines[0])
	}
	if lines[7] != "1 X . . . . . . . " {
		t.Errorf("Unexpected rank 1 line %q", lines[7])
	}
	if lines[8] != "  a b c d e f g h" {
		t.Errorf("Unexpected file legend %q", lines[8])
	}

	bits := b.Bits()
	if len(bits) != 64 || bits[0] != '1' || bits[63] != '1' || strings.Count(bits, "1") != 2 {
		t.Errorf("Unexpected bit pattern %s", bits)
	}

	if !strings.HasPrefix(FormatMask(b), "MASK: 9223372036854775809\n") {
		t.Errorf("Unexpected mask header: %q", FormatMask(b))
	}
}

func TestSquaresRoundTrip(t *testing.T) {
	rel := RookRelevance(D4)
	got := SquaresBB(rel).Squares()
	if len(got) != len(rel) {
		t.Fatalf("Expected %d squares, got %d", len(rel), len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("Squares not ascending: %v", got)
		}
	}
}

func BenchmarkEnumerateOccupancies(b *testing.B) {
	rel := RookRelevance(A1)
	for i := 0; i < b.N; i++ {
		EnumerateOccupancies(A1, rel)
	}
}
