// Package render draws board masks as SVG and PNG images for debugging
// relevance and attack sets.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/rookmagic/internal/board"
)

// Board geometry in SVG user units.
const (
	cellSize = 40
	margin   = 20 // room for rank and file labels
	boardPx  = board.Size * cellSize
	viewPx   = boardPx + margin
)

// Colors
const (
	lightSquare  = "#eeeed2"
	darkSquare   = "#769656"
	attackColor  = "#f4a261"
	blockerColor = "#1d3557"
	targetColor  = "#e63946"
	markerColor  = "#457b9d"
	labelColor   = "#333333"
)

// Layers are the masks drawn on one board. Priority from top: target,
// blockers, attacks, plain squares. Relevant squares get a round marker.
type Layers struct {
	Target   board.Square // NoSquare to omit
	Relevant board.Bitboard
	Attacks  board.Bitboard
	Blockers board.Bitboard
}

// RookLayers returns the layers for a rook on sq with the given blockers.
func RookLayers(sq board.Square, blockers board.Bitboard) Layers {
	return Layers{
		Target:   sq,
		Relevant: board.RookMask(sq),
		Attacks:  board.RookAttacks(sq, blockers),
		Blockers: blockers,
	}
}

// WriteSVG writes l as an SVG document with rank and file labels.
func WriteSVG(w io.Writer, l Layers) error {
	return writeSVG(w, l, true)
}

// writeSVG draws the board. The rasterizer has no text support, so PNG
// output leaves labels out and draws them separately.
func writeSVG(w io.Writer, l Layers, labels bool) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(viewPx, viewPx, 0, 0, viewPx, viewPx)
	canvas.Rect(0, 0, viewPx, viewPx, `fill="#ffffff"`)

	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			sq := board.NewSquare(file, rank)
			x, y := squareOrigin(sq)

			canvas.Rect(x, y, cellSize, cellSize, fill(squareColor(sq, l)))
		}
	}
	for _, sq := range l.Relevant.Squares() {
		x, y := squareOrigin(sq)
		canvas.Circle(x+cellSize/2, y+cellSize/2, cellSize/6, fill(markerColor))
	}

	if labels {
		canvas.Gstyle(fmt.Sprintf("font-family:sans-serif;font-size:12px;fill:%s", labelColor))
		for rank := 0; rank < board.Size; rank++ {
			_, y := squareOrigin(board.NewSquare(0, rank))
			canvas.Text(margin/4, y+cellSize/2+4, fmt.Sprintf("%d", rank+1))
		}
		for file := 0; file < board.Size; file++ {
			x, _ := squareOrigin(board.NewSquare(file, 0))
			canvas.Text(x+cellSize/2-3, boardPx+margin-5, string(rune('a'+file)))
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

// squareOrigin returns the top-left corner of sq, rank 8 at the top.
func squareOrigin(sq board.Square) (x, y int) {
	return margin + sq.File()*cellSize, (board.Size - 1 - sq.Rank()) * cellSize
}

func squareColor(sq board.Square, l Layers) string {
	switch {
	case sq == l.Target:
		return targetColor
	case l.Blockers.IsSet(sq):
		return blockerColor
	case l.Attacks.IsSet(sq):
		return attackColor
	case (sq.File()+sq.Rank())%2 == 0:
		return darkSquare
	default:
		return lightSquare
	}
}

func fill(color string) string {
	return fmt.Sprintf(`fill="%s"`, color)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
