package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is an edible item that disappears at ExpiresAt.
type Food struct {
	Pos       Position
	Color     core.Color
	ExpiresAt time.Time
}

// NewFood creates food that expires ttl after now.
func NewFood(pos Position, color core.Color, now time.Time, ttl time.Duration) *Food {
	return &Food{
		Pos:       pos,
		Color:     color,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the food is gone at the given instant.
func (f *Food) Expired(now time.Time) bool {
	return !now.Before(f.ExpiresAt)
}

// Consume expires the food immediately. It stays in the game's collection
// until the next expiry sweep removes it.
func (f *Food) Consume() {
	f.ExpiresAt = time.Time{}
}

// Remaining returns the time left before expiry, never negative.
func (f *Food) Remaining(now time.Time) time.Duration {
	return max(f.ExpiresAt.Sub(now), 0)
}
