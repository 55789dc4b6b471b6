// Package snake implements the snake simulation: a toroidal grid, a snake
// with deferred growth, expiring food and the tick-driven state machine.
// It has no terminal or timer dependencies; those are injected.
package snake

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusStarting   Status = iota // Constructed, never started
	StatusRunning                  // Ticks are scheduled
	StatusPausing                  // Ticks cancelled, resumable
	StatusRestarting               // Episode over; the next Start resets first
)

func (s Status) String() string {
	switch s {
	case StatusStarting:
		return "starting"
	case StatusRunning:
		return "running"
	case StatusPausing:
		return "pausing"
	case StatusRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// Game owns one grid, one snake and the active food, and advances them one
// tick at a time. It is not safe for concurrent use; the scheduler must
// deliver ticks on the caller's goroutine.
type Game struct {
	cfg       config.SnakeConfig
	scheduler Scheduler
	renderer  Renderer
	now       func() time.Time
	rng       *rand.Rand
	logger    *log.Logger
	palette   []core.Color

	grid      *Grid
	body      *Body
	food      []*Food
	direction Direction
	status    Status
	tick      uint64
	score     int
}

// Option configures collaborators of a Game.
type Option func(*Game)

// WithScheduler sets the tick scheduler. Without one, ticks only happen when
// the caller invokes Tick.
func WithScheduler(s Scheduler) Option {
	return func(g *Game) { g.scheduler = s }
}

// WithRenderer sets the repaint target.
func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithClock replaces time.Now for food expiry.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithRand sets the random source for spawning. It overrides the config seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game in StatusStarting. The config is copied and never
// modified afterwards.
func New(cfg config.SnakeConfig, opts ...Option) *Game {
	cfg.Food.SpawnChances = slices.Clone(cfg.Food.SpawnChances)
	cfg.Food.Colors = slices.Clone(cfg.Food.Colors)

	g := &Game{
		cfg:       cfg,
		scheduler: nopScheduler{},
		renderer:  nopRenderer{},
		now:       time.Now,
		palette:   cfg.Food.Palette(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.reset()
	return g
}

// reset rebuilds all episode state, keeping config and collaborators.
func (g *Game) reset() {
	g.grid = NewGrid(g.cfg.Grid.Size)
	g.body = NewBody(g.cfg.Snake.Length, g.grid.Size(), Position{X: g.cfg.Snake.OffsetX, Y: g.cfg.Snake.OffsetY})
	g.food = nil
	g.direction = DirRight
	g.status = StatusStarting
	g.tick = 0
	g.score = 0
	g.paint(g.now())
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.direction
}

// Start begins or resumes ticking. A finished episode is reset first.
func (g *Game) Start() {
	if g.status == StatusRestarting {
		g.reset()
		g.logger.Debug("episode reset")
	}
	if g.status != StatusRunning {
		g.status = StatusRunning
		g.scheduler.Schedule(g.cfg.Timing.TickInterval)
		g.logger.Debug("started", "interval", g.cfg.Timing.TickInterval)
	}
	g.render()
}

// Stop cancels ticking. A finished episode stays in StatusRestarting.
func (g *Game) Stop() {
	g.scheduler.Cancel()
	if g.status != StatusRestarting {
		g.status = StatusPausing
	}
	g.logger.Debug("stopped", "status", g.status)
	g.render()
}

// Toggle pauses a running game and starts any other.
func (g *Game) Toggle() {
	if g.status == StatusRunning {
		g.Stop()
		return
	}
	g.Start()
}

// SetDirection changes the heading unless d reverses the current one.
func (g *Game) SetDirection(d Direction) {
	if !d.Valid() || d == g.direction.Opposite() {
		return
	}
	g.direction = d
}

// Tick advances the simulation by one step. It does nothing while paused or
// after the episode has ended.
func (g *Game) Tick() {
	if g.status == StatusPausing || g.status == StatusRestarting {
		return
	}
	now := g.now()
	g.tick++

	g.expireFood(now)
	g.spawnFood(now)

	head := g.body.Step(g.direction, g.grid.Size())

	if g.body.HitsSelf() {
		g.logger.Debug("self collision", "head", head, "length", g.body.Len(), "score", g.score)
		g.Stop()
		g.status = StatusRestarting
		g.render()
		return
	}

	g.feed(head, now)
	g.paint(now)
	g.render()
}

// expireFood drops food whose time is up, including food eaten last tick.
func (g *Game) expireFood(now time.Time) {
	g.food = slices.DeleteFunc(g.food, func(f *Food) bool {
		return f.Expired(now)
	})
}

// SpawnChance returns the per-tick spawn probability with count food items
// active. It never increases with count and is zero at or above the cap.
func (g *Game) SpawnChance(count int) float64 {
	f := g.cfg.Food
	if count < 0 || count >= min(f.MaxActive, config.MaxFoodActive) || count >= len(f.SpawnChances) {
		return 0
	}
	return core.ClampF(f.SpawnChances[count]*f.SpawnMultiplier, 0, 1)
}

func (g *Game) spawnFood(now time.Time) {
	chance := g.SpawnChance(len(g.food))
	if chance <= 0 || g.rng.Float64() >= chance {
		return
	}

	size := g.grid.Size()
	pos := Position{X: g.rng.Intn(size), Y: g.rng.Intn(size)}
	color := g.palette[g.rng.Intn(len(g.palette))]

	f := g.cfg.Food
	seconds := f.TTLMin
	if f.TTLMax > f.TTLMin {
		seconds += g.rng.Intn(f.TTLMax - f.TTLMin + 1)
	}
	ttl := time.Duration(float64(seconds) * float64(time.Second) * f.ExpirationMultiplier)

	g.food = append(g.food, NewFood(pos, color, now, ttl))
	g.logger.Debug("food spawned", "pos", pos, "ttl", ttl, "active", len(g.food))
}

// feed consumes every live food under the head and marks growth once.
func (g *Game) feed(head Position, now time.Time) {
	ate := false
	for _, f := range g.food {
		if f.Pos == head && !f.Expired(now) {
			f.Consume()
			g.score++
			ate = true
		}
	}
	if ate {
		g.body.MarkGrowth()
		g.logger.Debug("food eaten", "pos", head, "score", g.score)
	}
}

// paint recomputes every cell from the snake and the live food.
func (g *Game) paint(now time.Time) {
	g.grid.Clear()
	for _, f := range g.food {
		if !f.Expired(now) {
			g.grid.Paint(f.Pos, f.Color, ShapeDisc)
		}
	}
	for i, s := range g.body.segments {
		color := ColorBodyEven
		switch {
		case i == 0:
			color = ColorHead
		case i%2 == 1:
			color = ColorBodyOdd
		}
		g.grid.Paint(s.Pos, color, ShapeBlock)
	}
}

// Food returns copies of the food items that have not expired.
func (g *Game) Food() []Food {
	now := g.now()
	out := make([]Food, 0, len(g.food))
	for _, f := range g.food {
		if !f.Expired(now) {
			out = append(out, *f)
		}
	}
	return out
}

// Lookup returns a copy of the cell at (x, y) as painted by the last tick.
func (g *Game) Lookup(x, y int) (Cell, bool) {
	c := g.grid.Lookup(x, y)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

func (g *Game) render() {
	g.renderer.Render(g.Snapshot())
}
