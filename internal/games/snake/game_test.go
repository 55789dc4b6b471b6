package snake

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// testConfig returns a 10x10 game with spawning disabled so tests control food.
func testConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Size = 10
	cfg.Snake.Length = 4
	cfg.Snake.OffsetX = 3
	cfg.Snake.OffsetY = 3
	cfg.Food.SpawnChances = []float64{0, 0, 0}
	cfg.Seed = 42
	return cfg
}

type harness struct {
	game    *Game
	clock   *fakeClock
	sched   *ManualScheduler
	renders []Snapshot
}

func newHarness(t *testing.T, cfg config.SnakeConfig) *harness {
	t.Helper()
	h := &harness{clock: newFakeClock(), sched: &ManualScheduler{}}
	h.game = New(cfg,
		WithClock(h.clock.Now),
		WithScheduler(h.sched),
		WithRenderer(RenderFunc(func(s Snapshot) { h.renders = append(h.renders, s) })),
	)
	return h
}

// tick advances the clock by one interval and ticks the game.
func (h *harness) tick() {
	h.clock.Advance(h.game.cfg.Timing.TickInterval)
	h.game.Tick()
}

func (h *harness) placeFood(p Position, ttl time.Duration) *Food {
	f := NewFood(p, core.ColorRed, h.clock.Now(), ttl)
	h.game.food = append(h.game.food, f)
	return f
}

func TestNewGameInitialState(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game

	if g.Status() != StatusStarting {
		t.Errorf("Status() = %s, want starting", g.Status())
	}
	if g.Direction() != DirRight {
		t.Errorf("Direction() = %s, want right", g.Direction())
	}
	snap := g.Snapshot()
	if snap.Head != (Position{X: 6, Y: 3}) {
		t.Errorf("Head = %s, want (6,3)", snap.Head)
	}
	if snap.Length != 4 || snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}
	if len(snap.Food) != 0 {
		t.Errorf("Expected no food, got %d", len(snap.Food))
	}
	if c, _ := snap.Cell(6, 3); c.Color != ColorHead {
		t.Errorf("Head cell not painted at construction: %v", c.Color)
	}
	if len(h.renders) != 0 {
		t.Errorf("New should not render, got %d renders", len(h.renders))
	}
}

func TestGameDoesNotModifyConfig(t *testing.T) {
	cfg := testConfig()
	g := New(cfg, WithClock(newFakeClock().Now))
	cfg.Food.SpawnChances[0] = 1

	if g.Config().Food.SpawnChances[0] != 0 {
		t.Error("Game shares the caller's spawn chance slice")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game

	g.Start()
	if g.Status() != StatusRunning {
		t.Fatalf("Status() = %s, want running", g.Status())
	}
	if !h.sched.Active() || h.sched.Interval() != g.cfg.Timing.TickInterval {
		t.Errorf("Scheduler not armed: active=%v interval=%v", h.sched.Active(), h.sched.Interval())
	}

	// Starting twice must not schedule twice.
	g.Start()
	if starts, _ := h.sched.Counts(); starts != 1 {
		t.Errorf("Schedule called %d times, want 1", starts)
	}

	g.Stop()
	if g.Status() != StatusPausing {
		t.Errorf("Status() = %s, want pausing", g.Status())
	}
	if h.sched.Active() {
		t.Error("Scheduler still active after Stop")
	}

	g.Start()
	if g.Status() != StatusRunning {
		t.Errorf("Resume: Status() = %s, want running", g.Status())
	}
	if len(h.renders) != 4 {
		t.Errorf("Expected a render per Start/Stop call, got %d", len(h.renders))
	}
}

func TestToggle(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game

	g.Toggle()
	if g.Status() != StatusRunning {
		t.Fatalf("Toggle from starting: %s", g.Status())
	}
	g.Toggle()
	if g.Status() != StatusPausing {
		t.Fatalf("Toggle from running: %s", g.Status())
	}
	g.Toggle()
	if g.Status() != StatusRunning {
		t.Fatalf("Toggle from pausing: %s", g.Status())
	}
}

func TestTickWhilePausedIsNoop(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game
	g.Start()
	g.Stop()
	before := g.Snapshot()
	renders := len(h.renders)

	h.tick()

	after := g.Snapshot()
	if after.Tick != before.Tick || after.Head != before.Head {
		t.Errorf("Tick advanced while paused: %+v -> %+v", before.Head, after.Head)
	}
	if len(h.renders) != renders {
		t.Error("Tick rendered while paused")
	}
}

func TestSingleTickMovesHead(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game
	g.Start()

	h.tick()

	snap := g.Snapshot()
	if snap.Head != (Position{X: 7, Y: 3}) {
		t.Errorf("Head = %s, want (7,3)", snap.Head)
	}
	if snap.Length != 4 {
		t.Errorf("Length = %d, want 4", snap.Length)
	}
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, want 1", snap.Tick)
	}
	if h.renders[len(h.renders)-1].Head != snap.Head {
		t.Error("Tick did not render the new state")
	}
}

func TestLengthConstantWithoutFood(t *testing.T) {
	h := newHarness(t, testConfig())
	h.game.Start()

	for i := 0; i < 50; i++ {
		h.tick()
		if h.game.Status() != StatusRunning {
			t.Fatalf("Tick %d: status %s", i, h.game.Status())
		}
		if l := h.game.Snapshot().Length; l != 4 {
			t.Fatalf("Tick %d: length %d, want 4", i, l)
		}
	}
}

func TestNoImmediateReversal(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game
	g.Start()

	g.SetDirection(DirLeft)
	if g.Direction() != DirRight {
		t.Fatalf("Reverse accepted: %s", g.Direction())
	}
	h.tick()
	if head := g.Snapshot().Head; head != (Position{X: 7, Y: 3}) {
		t.Errorf("Head = %s, want (7,3)", head)
	}

	g.SetDirection(DirDown)
	if g.Direction() != DirDown {
		t.Fatalf("Perpendicular turn rejected: %s", g.Direction())
	}
	g.SetDirection(DirUp)
	if g.Direction() != DirDown {
		t.Errorf("Reverse of new direction accepted: %s", g.Direction())
	}

	g.SetDirection(Direction(9))
	if g.Direction() != DirDown {
		t.Errorf("Invalid direction accepted: %s", g.Direction())
	}
}

func TestEatingGrowsOnNextTick(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game
	g.Start()
	f := h.placeFood(Position{X: 7, Y: 3}, 10*time.Second)

	h.tick()

	if l := g.Snapshot().Length; l != 4 {
		t.Errorf("Length right after eating = %d, want 4", l)
	}
	if g.Snapshot().Score != 1 {
		t.Errorf("Score = %d, want 1", g.Snapshot().Score)
	}
	if !f.Expired(h.clock.Now()) {
		t.Error("Eaten food should be expired")
	}
	if n := len(g.Food()); n != 0 {
		t.Errorf("Food() returned %d items, want 0", n)
	}
	if n := len(g.food); n != 1 {
		t.Errorf("Eaten food should stay until the next sweep, have %d", n)
	}
	if c, _ := g.Lookup(7, 3); c.Shape != ShapeBlock || c.Color != ColorHead {
		t.Errorf("Cell (7,3) = %v/%v, want head block", c.Color, c.Shape)
	}

	h.tick()

	if l := g.Snapshot().Length; l != 5 {
		t.Errorf("Length one tick later = %d, want 5", l)
	}
	if n := len(g.food); n != 0 {
		t.Errorf("Eaten food not swept, have %d", n)
	}

	h.tick()
	if l := g.Snapshot().Length; l != 5 {
		t.Errorf("Growth repeated: length %d", l)
	}
}

func TestFoodExpiresAndIsSwept(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game
	g.Start()
	h.placeFood(Position{X: 0, Y: 8}, 2*time.Second)

	h.clock.Advance(time.Second)
	g.Tick()
	if n := len(g.Food()); n != 1 {
		t.Fatalf("Food gone too early: %d", n)
	}
	if c, _ := g.Lookup(0, 8); c.Shape != ShapeDisc || c.Color != core.ColorRed {
		t.Errorf("Food cell = %v/%v, want red disc", c.Color, c.Shape)
	}

	h.clock.Advance(time.Second)
	if n := len(g.Food()); n != 0 {
		t.Errorf("Food() at expiry returned %d items", n)
	}
	g.Tick()
	if n := len(g.food); n != 0 {
		t.Errorf("Expired food not swept: %d", n)
	}
	if c, _ := g.Lookup(0, 8); c.Shape != ShapeBlock || c.Color != ColorBackground {
		t.Errorf("Expired food still painted: %v/%v", c.Color, c.Shape)
	}
}

func TestExpiredFoodIsNotEaten(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game
	g.Start()
	h.placeFood(Position{X: 7, Y: 3}, 0)

	h.tick()

	if g.Snapshot().Score != 0 {
		t.Error("Expired food was eaten")
	}
	h.tick()
	if l := g.Snapshot().Length; l != 4 {
		t.Errorf("Length = %d, want 4", l)
	}
}

func TestOverlappingFoodGrowsOnce(t *testing.T) {
	h := newHarness(t, testConfig())
	g := h.game
	g.Start()
	h.placeFood(Position{X: 7, Y: 3}, 10*time.Second)
	h.placeFood(Position{X: 7, Y: 3}, 10*time.Second)

	h.tick()
	h.tick()

	snap := g.Snapshot()
	if snap.Score != 2 {
		t.Errorf("Score = %d, want 2", snap.Score)
	}
	if snap.Length != 5 {
		t.Errorf("Length = %d, want 5", snap.Length)
	}
}

func TestWraparound(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		axis func(Position) int
		want int
	}{
		{"right", DirRight, func(p Position) int { return p.X }, 0},
		{"down", DirDown, func(p Position) int { return p.Y }, 0},
		{"left", DirLeft, func(p Position) int { return p.X }, 9},
		{"up", DirUp, func(p Position) int { return p.Y }, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Snake.Length = 1
			h := newHarness(t, cfg)
			g := h.game
			g.Start()
			// Face the right way without reversing from the default heading.
			if tt.dir == DirLeft {
				g.SetDirection(DirUp)
				h.tick()
			}
			g.SetDirection(tt.dir)

			// A full lap returns to the start, so the wrapped coordinate appears on the way.
			seen := false
			start := g.Snapshot().Head
			for i := 0; i < 10; i++ {
				prev := g.Snapshot().Head
				h.tick()
				head := g.Snapshot().Head
				if tt.axis(head) == tt.want && tt.axis(prev) != tt.want {
					seen = true
				}
				if head.X < 0 || head.X >= 10 || head.Y < 0 || head.Y >= 10 {
					t.Fatalf("Head left the board: %s", head)
				}
			}
			if !seen {
				t.Errorf("Never wrapped to %d", tt.want)
			}
			if g.Snapshot().Head != start {
				t.Errorf("After a full lap head = %s, want %s", g.Snapshot().Head, start)
			}
		})
	}
}

func TestSelfCollisionEndsEpisode(t *testing.T) {
	cfg := testConfig()
	cfg.Snake.Length = 5
	h := newHarness(t, cfg)
	g := h.game
	g.Start()

	for _, d := range []Direction{DirDown, DirLeft} {
		g.SetDirection(d)
		h.tick()
		if g.Status() != StatusRunning {
			t.Fatalf("Collision too early after %s", d)
		}
	}
	g.SetDirection(DirUp)
	h.tick()

	if g.Status() != StatusRestarting {
		t.Fatalf("Status() = %s, want restarting", g.Status())
	}
	if h.sched.Active() {
		t.Error("Scheduler still active after collision")
	}
	if last := h.renders[len(h.renders)-1]; last.Status != StatusRestarting {
		t.Errorf("Last render status = %s, want restarting", last.Status)
	}

	// Further ticks are ignored.
	tick := g.Snapshot().Tick
	h.tick()
	if g.Snapshot().Tick != tick {
		t.Error("Tick advanced after collision")
	}

	// Stop keeps the restarting status.
	g.Stop()
	if g.Status() != StatusRestarting {
		t.Errorf("Stop changed status to %s", g.Status())
	}

	g.Start()
	snap := g.Snapshot()
	if snap.Status != StatusRunning {
		t.Errorf("Status after restart = %s", snap.Status)
	}
	if snap.Head != (Position{X: 7, Y: 3}) || snap.Length != 5 || snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("Episode not reset: %+v", snap)
	}
	if snap.Direction != DirRight {
		t.Errorf("Direction not reset: %s", snap.Direction)
	}
	if !h.sched.Active() {
		t.Error("Scheduler not re-armed after restart")
	}
}

func TestSpawnChanceMonotonic(t *testing.T) {
	g := New(config.DefaultSnakeConfig(), WithClock(newFakeClock().Now))

	want := []float64{0.085, 0.0055, 0.0025, 0, 0}
	for n, w := range want {
		if got := g.SpawnChance(n); got != w {
			t.Errorf("SpawnChance(%d) = %g, want %g", n, got, w)
		}
	}
	for n := 1; n < 6; n++ {
		if g.SpawnChance(n) > g.SpawnChance(n-1) {
			t.Errorf("SpawnChance(%d) > SpawnChance(%d)", n, n-1)
		}
	}
}

func TestSpawnChanceMultiplier(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Food.SpawnMultiplier = 20
	cfg.Food.MaxActive = 2
	g := New(cfg, WithClock(newFakeClock().Now))

	if got := g.SpawnChance(0); got != 1 {
		t.Errorf("SpawnChance(0) = %g, want clamp to 1", got)
	}
	if got := g.SpawnChance(1); math.Abs(got-0.11) > 1e-9 {
		t.Errorf("SpawnChance(1) = %g, want 0.11", got)
	}
	if got := g.SpawnChance(2); got != 0 {
		t.Errorf("SpawnChance(2) = %g, want 0 at max_active", got)
	}
}

func TestSpawnChanceHardCap(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Food.SpawnChances = []float64{1, 1, 1, 1, 1}
	cfg.Food.MaxActive = 5
	g := New(cfg, WithClock(newFakeClock().Now))

	if got := g.SpawnChance(2); got != 1 {
		t.Errorf("SpawnChance(2) = %g, want 1", got)
	}
	for n := config.MaxFoodActive; n < 5; n++ {
		if got := g.SpawnChance(n); got != 0 {
			t.Errorf("SpawnChance(%d) = %g, want 0 at the food cap", n, got)
		}
	}
}

func TestSpawnedFood(t *testing.T) {
	cfg := testConfig()
	cfg.Food.SpawnChances = []float64{1, 1, 1}
	cfg.Food.TTLMin = 5
	cfg.Food.TTLMax = 10
	cfg.Food.ExpirationMultiplier = 2
	cfg.Food.Colors = []string{"magenta"}
	h := newHarness(t, cfg)
	g := h.game
	g.Start()

	h.tick()

	if n := len(g.food); n != 1 {
		t.Fatalf("Expected one spawned food, got %d", n)
	}
	f := g.food[0]
	if f.Color != core.ColorMagenta {
		t.Errorf("Food color = %v, want magenta", f.Color)
	}
	if f.Pos.X < 0 || f.Pos.X >= 10 || f.Pos.Y < 0 || f.Pos.Y >= 10 {
		t.Errorf("Food outside grid: %s", f.Pos)
	}
	if !f.ExpiresAt.IsZero() {
		ttl := f.ExpiresAt.Sub(h.clock.Now())
		if ttl < 10*time.Second || ttl > 20*time.Second {
			t.Errorf("Food ttl = %v, want within [10s, 20s]", ttl)
		}
	}

	for i := 0; i < 100; i++ {
		h.tick()
		if n := len(g.food); n > cfg.Food.MaxActive {
			t.Fatalf("Tick %d: %d food items exceed max %d", i, n, cfg.Food.MaxActive)
		}
		if g.Status() == StatusRestarting {
			g.Start()
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical boards
	cfg := testConfig()
	cfg.Food.SpawnChances = []float64{0.5, 0.3, 0.1}

	run := func() string {
		clock := newFakeClock()
		g := New(cfg, WithClock(clock.Now), WithRand(rand.New(rand.NewSource(7))))
		g.Start()
		for i := 0; i < 60; i++ {
			switch i {
			case 15:
				g.SetDirection(DirDown)
			case 30:
				g.SetDirection(DirLeft)
			case 45:
				g.SetDirection(DirUp)
			}
			clock.Advance(cfg.Timing.TickInterval)
			g.Tick()
		}
		return g.DebugState()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Runs diverged:\n%s\nvs\n%s", a, b)
	}
}

func TestDebugState(t *testing.T) {
	h := newHarness(t, testConfig())
	h.placeFood(Position{X: 0, Y: 0}, time.Minute)

	out := h.game.DebugState()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 11 {
		t.Fatalf("Expected header plus 10 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "status=starting dir=right") {
		t.Errorf("Header = %q", lines[0])
	}
	if lines[1][0] != '*' {
		t.Errorf("Food not drawn: %q", lines[1])
	}
	if lines[4] != "...ooo@..." {
		t.Errorf("Snake row = %q, want %q", lines[4], "...ooo@...")
	}
}

func TestBodyColorsAlternate(t *testing.T) {
	h := newHarness(t, testConfig())
	snap := h.game.Snapshot()

	want := map[int]core.Color{6: ColorHead, 5: ColorBodyOdd, 4: ColorBodyEven, 3: ColorBodyOdd}
	for x, color := range want {
		c, ok := snap.Cell(x, 3)
		if !ok {
			t.Fatalf("Cell(%d, 3) missing", x)
		}
		if c.Color != color {
			t.Errorf("Cell(%d, 3) color = %v, want %v", x, c.Color, color)
		}
	}
	if _, ok := snap.Cell(10, 0); ok {
		t.Error("Cell(10, 0) should be off the board")
	}
}
