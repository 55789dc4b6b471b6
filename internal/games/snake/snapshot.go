package snake

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of the game state for renderers.
type Snapshot struct {
	Status    Status
	Direction Direction
	Tick      uint64
	Score     int
	Length    int
	Head      Position
	GridSize  int
	Cells     []Cell // row-major, GridSize*GridSize
	Food      []Food // live food only
}

// Cell returns the cell at (x, y), or false when off the board.
func (s Snapshot) Cell(x, y int) (Cell, bool) {
	if x < 0 || x >= s.GridSize || y < 0 || y >= s.GridSize {
		return Cell{}, false
	}
	return s.Cells[y*s.GridSize+x], true
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Status:    g.status,
		Direction: g.direction,
		Tick:      g.tick,
		Score:     g.score,
		Length:    g.body.Len(),
		Head:      g.body.Head(),
		GridSize:  g.grid.Size(),
		Cells:     g.grid.Cells(),
		Food:      g.Food(),
	}
}

// DebugState renders the board as text with a header line.
// '@' is the head, 'o' body, '*' food and '.' empty.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "status=%s dir=%s tick=%d score=%d len=%d head=%s food=%d\n",
		g.status, g.direction, g.tick, g.score, g.body.Len(), g.body.Head(), len(g.Food()))

	size := g.grid.Size()
	rows := make([][]byte, size)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", size))
	}
	for _, f := range g.Food() {
		rows[f.Pos.Y][f.Pos.X] = '*'
	}
	for i, s := range g.body.segments {
		if i == 0 {
			rows[s.Pos.Y][s.Pos.X] = '@'
		} else if rows[s.Pos.Y][s.Pos.X] != '@' {
			rows[s.Pos.Y][s.Pos.X] = 'o'
		}
	}
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
