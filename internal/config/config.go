// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for one game. A game takes a copy at
// construction time and never changes it afterwards.
type SnakeConfig struct {
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
	Grid    GridConfig    `yaml:"grid"`
	Snake   SnakeSettings `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Seed    int64         `yaml:"seed"` // 0 = random based on time
}

// DisplayConfig holds presentation-only canvas dimensions in terminal cells.
// The simulation never reads these.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the fixed tick cadence.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// GridConfig defines the square board.
type GridConfig struct {
	Size int `yaml:"size"` // Cells per side, clamped to at least 3
}

// SnakeSettings defines the snake at the start of an episode.
type SnakeSettings struct {
	Length  int `yaml:"length"`   // Clamped to [1, grid size]
	OffsetX int `yaml:"offset_x"` // Tail position; the head is placed Length-1 cells to the right
	OffsetY int `yaml:"offset_y"`
}

// MaxFoodActive is the hard cap on food items on the board at once.
const MaxFoodActive = 3

// FoodConfig defines spawn and expiry policy.
type FoodConfig struct {
	// SpawnChances[n] is the per-tick spawn probability while n food items are active.
	SpawnChances         []float64 `yaml:"spawn_chances"`
	SpawnMultiplier      float64   `yaml:"spawn_multiplier"`
	ExpirationMultiplier float64   `yaml:"expiration_multiplier"`
	MaxActive            int       `yaml:"max_active"` // No spawn attempt at or above this count
	TTLMin               int       `yaml:"ttl_min"`    // Seconds
	TTLMax               int       `yaml:"ttl_max"`    // Seconds
	Colors               []string  `yaml:"colors"`
}

// defaultFoodPalette is used when no valid colors are configured.
var defaultFoodPalette = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorOrange,
}

// Palette returns the configured food colors, skipping unknown names.
func (f FoodConfig) Palette() []core.Color {
	palette := make([]core.Color, 0, len(f.Colors))
	for _, name := range f.Colors {
		if c, err := core.ParseColor(name); err == nil {
			palette = append(palette, c)
		}
	}
	if len(palette) == 0 {
		return append([]core.Color(nil), defaultFoodPalette...)
	}
	return palette
}

// Validate checks that the configuration describes a playable game.
// Out-of-range sizes are not errors: the game clamps them.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Food.SpawnMultiplier < 0 {
		errs = append(errs, fmt.Errorf("food.spawn_multiplier must not be negative, got %g", c.Food.SpawnMultiplier))
	}
	if c.Food.ExpirationMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("food.expiration_multiplier must be positive, got %g", c.Food.ExpirationMultiplier))
	}
	if c.Food.MaxActive < 0 || c.Food.MaxActive > MaxFoodActive {
		errs = append(errs, fmt.Errorf("food.max_active must be in [0, %d], got %d", MaxFoodActive, c.Food.MaxActive))
	}
	if len(c.Food.SpawnChances) > MaxFoodActive {
		errs = append(errs, fmt.Errorf("food.spawn_chances has %d entries, at most %d allowed", len(c.Food.SpawnChances), MaxFoodActive))
	}
	if c.Food.TTLMin < 0 || c.Food.TTLMax < c.Food.TTLMin {
		errs = append(errs, fmt.Errorf("food ttl range [%d, %d] is invalid", c.Food.TTLMin, c.Food.TTLMax))
	}
	for i, p := range c.Food.SpawnChances {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("food.spawn_chances[%d] = %g is outside [0, 1]", i, p))
		}
		if i > 0 && p > c.Food.SpawnChances[i-1] {
			errs = append(errs, fmt.Errorf("food.spawn_chances must not increase with food count (index %d)", i))
		}
	}
	for _, name := range c.Food.Colors {
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("food.colors: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}
