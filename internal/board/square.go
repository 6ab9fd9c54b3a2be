// Package board implements the 8x8 geometry the magic search works on:
// squares, bitboards, rook relevance and ray-traced attacks.
package board

import "fmt"

// Square represents a square on the board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
// Row is the rank and column is the file, so the linear index is row*8+column.
type Square uint8

// Corner and centre squares used throughout the tests and examples.
const (
	A1 Square = 0
	H1 Square = 7
	D4 Square = 27
	A8 Square = 56
	H8 Square = 63

	NoSquare Square = 64
)

// Size is the number of rows and columns on the board.
const Size = 8

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
// No bounds checking is done; use SquareAt for untrusted input.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// SquareAt returns the square at (row, col), rejecting coordinates
// outside [0,7].
func SquareAt(row, col int) (Square, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return NoSquare, fmt.Errorf("%w: (%d, %d)", ErrInvalidSquare, row, col)
	}
	return NewSquare(col, row), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}
