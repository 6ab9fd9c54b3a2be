package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/rookmagic/internal/board"
)

// DefaultPNGSize is the default edge length of PNG output in pixels.
const DefaultPNGSize = 480

// WritePNG rasterizes l into a size x size PNG.
func WritePNG(w io.Writer, l Layers, size int) error {
	img, err := Rasterize(l, size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Rasterize renders l into an RGBA image with rank and file labels.
func Rasterize(l Layers, size int) (*image.RGBA, error) {
	if size < viewPx/4 {
		return nil, fmt.Errorf("image size %d too small, need at least %d", size, viewPx/4)
	}

	var buf bytes.Buffer
	if err := writeSVG(&buf, l, false); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	if err := drawLabels(rgba, float64(size)/viewPx); err != nil {
		return nil, err
	}
	return rgba, nil
}

// drawLabels writes rank numbers down the left margin and file letters
// along the bottom, scaled from SVG units to pixels.
func drawLabels(dst *image.RGBA, scale float64) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12 * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("failed to create label face: %w", err)
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{0x33, 0x33, 0x33, 0xff}),
		Face: face,
	}
	px := func(v int) int { return int(float64(v) * scale) }

	for rank := 0; rank < board.Size; rank++ {
		_, y := squareOrigin(board.NewSquare(0, rank))
		d.Dot = fixed.P(px(margin/4), px(y+cellSize/2+4))
		d.DrawString(fmt.Sprintf("%d", rank+1))
	}
	for file := 0; file < board.Size; file++ {
		x, _ := squareOrigin(board.NewSquare(file, 0))
		d.Dot = fixed.P(px(x+cellSize/2-3), px(boardPx+margin-5))
		d.DrawString(string(rune('a' + file)))
	}
	return nil
}
