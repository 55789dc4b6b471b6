package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of rows below the board reserved for the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// frame is the game's renderer: it keeps the latest snapshot for View.
type frame struct {
	snap snake.Snapshot
}

func (f *frame) Render(s snake.Snapshot) {
	f.snap = s
}

// Model is the Bubble Tea model hosting a single snake game.
type Model struct {
	game     *snake.Game
	sched    *teaScheduler
	frame    *frame
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	preset   config.DifficultyPreset
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for a game built from cfg. The preset is only
// shown in the HUD; apply it to cfg beforehand. A nil logger discards output.
func NewModel(cfg config.SnakeConfig, preset config.DifficultyPreset, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := &teaScheduler{}
	fr := &frame{}
	game := snake.New(cfg,
		snake.WithScheduler(sched),
		snake.WithRenderer(fr),
		snake.WithLogger(logger),
	)
	fr.snap = game.Snapshot()

	h := help.New()
	h.Width = cfg.Display.Width

	return Model{
		game:   game,
		sched:  sched,
		frame:  fr,
		screen: core.NewScreen(cfg.Display.Width, cfg.Display.Height-helpHeight),
		keys:   DefaultKeyMap(),
		help:   h,
		preset: preset,
		logger: logger,
	}
}

// Game returns the hosted game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Init starts the game and its tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Start()
	return m.sched.take()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.game.Toggle()
	case core.ActionRestart:
		if m.game.Status() == snake.StatusRestarting {
			m.game.Start()
		}
	default:
		if dir, ok := directionFor(action); ok {
			m.game.SetDirection(dir)
		}
	}

	return m, m.sched.take()
}

// handleTick advances the game when the tick belongs to the live schedule.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.accepts(msg) {
		return m, nil
	}
	m.game.Tick()
	return m, m.sched.next()
}

// saveScreenshot writes the current board as plain text under ~/.snake/screenshots.
func (m Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	paintGame(m.screen, m.frame.snap, m.preset)
	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the latest snapshot followed by the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	paintGame(m.screen, m.frame.snap, m.preset)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one game in the current terminal.
func Run(cfg config.SnakeConfig, preset config.DifficultyPreset, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, preset, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
