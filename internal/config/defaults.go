package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It mirrors the
// embedded defaults/snake.yaml and is used when that cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Display: DisplayConfig{
			Width:  80,
			Height: 24,
		},
		Timing: TimingConfig{
			TickInterval: 120 * time.Millisecond,
		},
		Grid: GridConfig{
			Size: 18,
		},
		Snake: SnakeSettings{
			Length:  4,
			OffsetX: 3,
			OffsetY: 3,
		},
		Food: FoodConfig{
			SpawnChances:         []float64{0.085, 0.0055, 0.0025},
			SpawnMultiplier:      1.0,
			ExpirationMultiplier: 1.0,
			MaxActive:            3,
			TTLMin:               5,
			TTLMax:               10,
			Colors:               []string{"bright_red", "bright_yellow", "bright_magenta", "orange"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
