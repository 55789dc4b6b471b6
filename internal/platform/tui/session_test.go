package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestSessionPickerStartsGame(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Seed = 1
	var m tea.Model = NewSessionModel(cfg, nil)

	// Cursor starts on normal; move to hard and select.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Selecting a preset should start the tick loop")
	}

	sm, ok := m.(SessionModel)
	if !ok || sm.game == nil {
		t.Fatalf("Session did not enter the game: %T", m)
	}
	if sm.game.preset != config.DifficultyHard {
		t.Errorf("Preset = %s, want hard", sm.game.preset)
	}
	if sm.game.Game().Status() != snake.StatusRunning {
		t.Errorf("Status() = %s, want running", sm.game.Game().Status())
	}
	spawn, expiry := config.MultipliersForPreset(config.DifficultyHard)
	gc := sm.game.Game().Config()
	if gc.Food.SpawnMultiplier != cfg.Food.SpawnMultiplier*spawn ||
		gc.Food.ExpirationMultiplier != cfg.Food.ExpirationMultiplier*expiry {
		t.Errorf("Preset not applied: %+v", gc.Food)
	}
}

func TestSessionQuitFromPicker(t *testing.T) {
	var m tea.Model = NewSessionModel(config.DefaultSnakeConfig(), nil)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("Quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestPresetPickerRows(t *testing.T) {
	m := NewPresetModel(80, 24)
	if n := len(m.table.Rows()); n != len(config.Presets) {
		t.Errorf("Rows = %d, want %d", n, len(config.Presets))
	}
	if m.table.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1 (normal)", m.table.Cursor())
	}
}
