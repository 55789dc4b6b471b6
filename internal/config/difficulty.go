package config

import "fmt"

// DifficultyPreset represents a named difficulty level. Presets only scale the
// food spawn and expiration multipliers; speed and board size are untouched.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string means DifficultyFixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", name)
}

// MultipliersForPreset returns the factors a preset applies to the configured
// spawn and expiration multipliers.
func MultipliersForPreset(preset DifficultyPreset) (spawn, expiration float64) {
	switch preset {
	case DifficultyEasy:
		return 1.5, 1.5
	case DifficultyHard:
		return 0.6, 0.6
	default:
		return 1.0, 1.0
	}
}

// Description returns a one-line summary for menus.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "More food, lasts longer"
	case DifficultyNormal:
		return "Reference spawn and expiry rates"
	case DifficultyHard:
		return "Scarce food, expires quickly"
	case DifficultyFixed:
		return "Use config file values unchanged"
	default:
		return ""
	}
}
