package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Segment is one body cell. Grow is only meaningful on the tail: it keeps the
// tail in place on the next step.
type Segment struct {
	Pos  Position
	Grow bool
}

// Body is the snake: head at index 0, tail last, never empty.
type Body struct {
	segments []Segment
}

// NewBody lays out a horizontal snake on a size x size board with its tail at
// offset and its head length-1 cells to the right. Length is clamped to
// [1, size] so the body never overlaps itself at spawn.
func NewBody(length, size int, offset Position) *Body {
	size = max(size, 1)
	length = core.Clamp(length, 1, size)

	segments := make([]Segment, length)
	for i := range segments {
		segments[i].Pos = Position{
			X: core.Wrap(offset.X+length-1-i, size),
			Y: core.Wrap(offset.Y, size),
		}
	}
	return &Body{segments: segments}
}

// newBodyAt builds a body from explicit positions, head first.
func newBodyAt(positions ...Position) *Body {
	segments := make([]Segment, len(positions))
	for i, p := range positions {
		segments[i].Pos = p
	}
	return &Body{segments: segments}
}

// Head returns the head position.
func (b *Body) Head() Position {
	return b.segments[0].Pos
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []Segment {
	return slices.Clone(b.segments)
}

// Contains reports whether any segment occupies p.
func (b *Body) Contains(p Position) bool {
	return slices.ContainsFunc(b.segments, func(s Segment) bool { return s.Pos == p })
}

// Step moves the head one cell in dir on a size x size torus and returns the
// new head. The tail is dropped unless it carries the growth marker, in which
// case it stays and the marker is cleared.
func (b *Body) Step(dir Direction, size int) Position {
	head := b.segments[0].Pos
	dx, dy := dir.Delta()
	next := Position{
		X: core.Wrap(head.X+dx, size),
		Y: core.Wrap(head.Y+dy, size),
	}

	b.segments = slices.Insert(b.segments, 0, Segment{Pos: next})

	tail := len(b.segments) - 1
	if b.segments[tail].Grow {
		b.segments[tail].Grow = false
	} else {
		b.segments = b.segments[:tail]
	}
	return next
}

// MarkGrowth flags the tail to be kept on the next step. Calling it again
// before that step has no further effect.
func (b *Body) MarkGrowth() {
	b.segments[len(b.segments)-1].Grow = true
}

// GrowthPending reports whether the tail carries the growth marker.
func (b *Body) GrowthPending() bool {
	return b.segments[len(b.segments)-1].Grow
}

// HitsSelf reports whether the head shares a cell with any other segment.
func (b *Body) HitsSelf() bool {
	head := b.segments[0].Pos
	for _, s := range b.segments[1:] {
		if s.Pos == head {
			return true
		}
	}
	return false
}
