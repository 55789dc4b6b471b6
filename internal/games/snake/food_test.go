package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFoodExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	f := NewFood(Position{X: 1, Y: 2}, core.ColorRed, now, 5*time.Second)

	tests := []struct {
		name    string
		at      time.Time
		expired bool
	}{
		{"at spawn", now, false},
		{"just before", now.Add(5*time.Second - time.Nanosecond), false},
		{"exactly at expiry", now.Add(5 * time.Second), true},
		{"after", now.Add(time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Expired(tt.at); got != tt.expired {
				t.Errorf("Expired() = %v, want %v", got, tt.expired)
			}
		})
	}
}

func TestFoodConsume(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	f := NewFood(Position{}, core.ColorRed, now, time.Hour)

	f.Consume()
	if !f.Expired(now) {
		t.Error("Consumed food should be expired immediately")
	}
	if !f.ExpiresAt.IsZero() {
		t.Errorf("ExpiresAt = %v, want zero time", f.ExpiresAt)
	}
	if f.Remaining(now) != 0 {
		t.Errorf("Remaining() = %v, want 0", f.Remaining(now))
	}
}

func TestFoodRemaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	f := NewFood(Position{}, core.ColorRed, now, 8*time.Second)

	if got := f.Remaining(now.Add(3 * time.Second)); got != 5*time.Second {
		t.Errorf("Remaining() = %v, want 5s", got)
	}
}
