// Package boardimg renders game snapshots as raster images.
package boardimg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultBlockSize is the cell size in pixels when none is given.
const DefaultBlockSize = 16

// Options controls image export.
type Options struct {
	BlockSize int // Pixels per grid cell
	Width     int // Final width in pixels; 0 keeps GridSize*BlockSize
}

var (
	backgroundColor = color.RGBA{R: 20, G: 20, B: 26, A: 255}
	gridColor       = color.RGBA{R: 44, G: 44, B: 52, A: 255}
)

// palette approximates the xterm colors the terminal renderer uses.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:           {R: 205, G: 0, B: 0, A: 255},
	core.ColorGreen:         {R: 0, G: 205, B: 0, A: 255},
	core.ColorYellow:        {R: 205, G: 205, B: 0, A: 255},
	core.ColorBlue:          {R: 0, G: 0, B: 238, A: 255},
	core.ColorMagenta:       {R: 205, G: 0, B: 205, A: 255},
	core.ColorCyan:          {R: 0, G: 205, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightRed:     {R: 255, G: 0, B: 0, A: 255},
	core.ColorBrightGreen:   {R: 0, G: 255, B: 0, A: 255},
	core.ColorBrightYellow:  {R: 255, G: 255, B: 0, A: 255},
	core.ColorBrightBlue:    {R: 92, G: 92, B: 255, A: 255},
	core.ColorBrightMagenta: {R: 255, G: 0, B: 255, A: 255},
	core.ColorBrightCyan:    {R: 0, G: 255, B: 255, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 135, B: 0, A: 255},
	core.ColorGray:          {R: 138, G: 138, B: 138, A: 255},
}

// ColorOf returns the RGBA value drawn for c.
func ColorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return backgroundColor
}

// Render draws the board: blocks as squares, discs as circles.
func Render(snap snake.Snapshot, blockSize int) image.Image {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	blockSize = max(blockSize, 4)
	size := snap.GridSize * blockSize

	dc := gg.NewContext(size, size)
	dc.SetColor(backgroundColor)
	dc.Clear()
	renderGrid(dc, size, blockSize)

	b := float64(blockSize)
	for _, c := range snap.Cells {
		if c.Shape == snake.ShapeBlock && c.Color == snake.ColorBackground {
			continue
		}
		x := float64(c.Pos.X) * b
		y := float64(c.Pos.Y) * b
		dc.SetColor(ColorOf(c.Color))
		if c.Shape == snake.ShapeDisc {
			dc.DrawCircle(x+b/2, y+b/2, b*0.4)
		} else {
			dc.DrawRectangle(x+1, y+1, b-2, b-2)
		}
		dc.Fill()
	}
	return dc.Image()
}

func renderGrid(dc *gg.Context, size, blockSize int) {
	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	for p := 0; p <= size; p += blockSize {
		dc.DrawLine(float64(p), 0, float64(p), float64(size))
		dc.DrawLine(0, float64(p), float64(size), float64(p))
	}
	dc.Stroke()
}

// Save renders snap and writes it to path. The format follows the file
// extension (png, jpg, gif, bmp, tif).
func Save(path string, snap snake.Snapshot, opts Options) error {
	img := Render(snap, opts.BlockSize)
	if opts.Width > 0 && opts.Width != img.Bounds().Dx() {
		img = imaging.Resize(img, opts.Width, 0, imaging.NearestNeighbor)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("boardimg: save %s: %w", path, err)
	}
	return nil
}
