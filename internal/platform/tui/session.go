package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// SessionModel manages the flow from the preset picker into a game.
// It is the top-level model for SSH sessions and for play without --preset.
type SessionModel struct {
	config   config.SnakeConfig
	logger   *log.Logger
	picker   PresetModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a session that starts at the preset picker.
func NewSessionModel(cfg config.SnakeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		config: cfg,
		logger: logger,
		picker: NewPresetModel(cfg.Display.Width, cfg.Display.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.Display.Width = wsm.Width
		m.config.Display.Height = wsm.Height
	}

	if m.game != nil {
		next, cmd := m.game.Update(msg)
		if gm, ok := next.(Model); ok {
			m.game = &gm
		}
		return m, cmd
	}
	return m.updatePicker(msg)
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if pm, ok := next.(PresetModel); ok {
		m.picker = pm
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if preset, ok := m.picker.Selected(); ok {
		cfg := m.config
		config.ApplySnakePreset(&cfg, preset)
		m.logger.Debug("preset chosen", "preset", preset)

		gm := NewModel(cfg, preset, m.logger)
		m.game = &gm
		return m, m.game.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.picker.View()
}

// RunSession starts the picker followed by a game in the current terminal.
func RunSession(cfg config.SnakeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
