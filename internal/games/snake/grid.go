package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MinGridSize is the smallest board side; smaller requests are clamped up.
const MinGridSize = 3

// Position represents a cell coordinate on the board.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Shape is how a cell is drawn.
type Shape int

const (
	ShapeBlock Shape = iota
	ShapeDisc
)

func (s Shape) String() string {
	if s == ShapeDisc {
		return "disc"
	}
	return "block"
}

// Visual defaults and snake colors.
const (
	ColorBackground = core.ColorDefault
	ColorHead       = core.ColorBrightGreen
	ColorBodyEven   = core.ColorGreen
	ColorBodyOdd    = core.ColorCyan
)

// Cell is one lattice point and how it should look this frame.
type Cell struct {
	Pos   Position
	Color core.Color
	Shape Shape
}

// Grid is a square lattice of cells stored row-major.
// Cell visuals are derived data: the game clears and repaints them every tick.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a size x size grid. Sizes below MinGridSize are clamped.
func NewGrid(size int) *Grid {
	size = max(size, MinGridSize)
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for y := range size {
		for x := range size {
			g.cells[y*size+x].Pos = Position{X: x, Y: y}
		}
	}
	g.Clear()
	return g
}

// Size returns the number of cells per side.
func (g *Grid) Size() int {
	return g.size
}

// Lookup returns the cell at (x, y), or nil when the coordinate is off the board.
func (g *Grid) Lookup(x, y int) *Cell {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return nil
	}
	return &g.cells[y*g.size+x]
}

// Clear resets every cell to the background block.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].Color = ColorBackground
		g.cells[i].Shape = ShapeBlock
	}
}

// Paint sets the visual of the cell at p. Off-board positions are ignored.
func (g *Grid) Paint(p Position, color core.Color, shape Shape) {
	if c := g.Lookup(p.X, p.Y); c != nil {
		c.Color = color
		c.Shape = shape
	}
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
