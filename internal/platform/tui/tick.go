// Package tui provides the Bubble Tea front end for the snake game: a model
// that hosts one game, a preset picker and an SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// schedule that produced it; ticks from a cancelled schedule are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// teaScheduler drives the game from Bubble Tea's update loop. Schedule and
// Cancel only record state; the model collects the resulting command with
// take after each call into the game.
type teaScheduler struct {
	gen      uint64
	interval time.Duration
	active   bool
	pending  tea.Cmd
}

// Schedule starts a new tick chain.
func (s *teaScheduler) Schedule(interval time.Duration) {
	s.gen++
	s.interval = interval
	s.active = true
	s.pending = s.next()
}

// Cancel invalidates any tick already in flight.
func (s *teaScheduler) Cancel() {
	s.gen++
	s.active = false
	s.pending = nil
}

// take returns the command queued by the last Schedule, if any.
func (s *teaScheduler) take() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

// next returns the command for the following tick of the current chain.
func (s *teaScheduler) next() tea.Cmd {
	if !s.active {
		return nil
	}
	return tickCmd(s.gen, s.interval)
}

// accepts reports whether msg belongs to the live chain.
func (s *teaScheduler) accepts(msg TickMsg) bool {
	return s.active && msg.Gen == s.gen
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
