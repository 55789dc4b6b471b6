package snake

import "time"

// Scheduler drives Game.Tick at a fixed interval. Implementations must invoke
// ticks on the same goroutine that calls the game's other methods, and Cancel
// must guarantee that no tick scheduled before it is delivered.
type Scheduler interface {
	Schedule(interval time.Duration)
	Cancel()
}

// Renderer receives a snapshot whenever the game wants a repaint.
type Renderer interface {
	Render(Snapshot)
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(Snapshot)

// Render calls f(s).
func (f RenderFunc) Render(s Snapshot) {
	f(s)
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration) {}
func (nopScheduler) Cancel()                {}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}

// ManualScheduler records scheduling requests without any timer. The owner
// calls Game.Tick itself, typically while Active reports true.
type ManualScheduler struct {
	active   bool
	interval time.Duration
	starts   int
	cancels  int
}

// Schedule marks the scheduler active.
func (m *ManualScheduler) Schedule(interval time.Duration) {
	m.active = true
	m.interval = interval
	m.starts++
}

// Cancel marks the scheduler inactive.
func (m *ManualScheduler) Cancel() {
	m.active = false
	m.cancels++
}

// Active reports whether ticks are currently wanted.
func (m *ManualScheduler) Active() bool {
	return m.active
}

// Interval returns the last requested interval.
func (m *ManualScheduler) Interval() time.Duration {
	return m.interval
}

// Counts returns how many times Schedule and Cancel were called.
func (m *ManualScheduler) Counts() (starts, cancels int) {
	return m.starts, m.cancels
}
