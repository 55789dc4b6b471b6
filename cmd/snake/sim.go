package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/boardimg"
)

var (
	flagSimTicks     int
	flagSimTurnEvery int
	flagSimRestart   bool
	flagSimVerbose   bool
	flagSimImage     string
	flagSimBlock     int
	flagSimWidth     int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI and print the final board.

Time is simulated: every tick advances a virtual clock by the configured
tick interval, so food expiry behaves as in a real game. With --seed the
output is reproducible.

Board legend: @ head, o body, * food, . empty

Examples:
  snake sim --seed 42
  snake sim --ticks 1000 --turn-every 7 --restart
  snake sim --ticks 20 --verbose
  snake sim --seed 7 --image board.png --block 24`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 200, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimTurnEvery, "turn-every", 0, "Turn clockwise every N ticks (0 = never turn)")
	simCmd.Flags().BoolVar(&flagSimRestart, "restart", false, "Start a new episode after a collision instead of stopping")
	simCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Print the board and debug logs on every tick")
	simCmd.Flags().StringVar(&flagSimImage, "image", "", "Also save the final board as an image (png, jpg, gif)")
	simCmd.Flags().IntVar(&flagSimBlock, "block", boardimg.DefaultBlockSize, "Image cell size in pixels")
	simCmd.Flags().IntVar(&flagSimWidth, "image-width", 0, "Scale the image to this width in pixels")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logOut := io.Discard
	if flagSimVerbose {
		logOut = os.Stderr
	}
	logger := log.NewWithOptions(logOut, log.Options{Level: log.DebugLevel, Prefix: "sim"})

	result := simulate(cfg, flagSimTicks, flagSimTurnEvery, flagSimRestart, logger, func(g *snake.Game) {
		if flagSimVerbose {
			fmt.Fprintln(out, g.DebugState())
		}
	})

	fmt.Fprint(out, result.Game.DebugState())
	fmt.Fprintf(out, "ticks=%d episodes=%d best_score=%d\n", result.Ticks, result.Episodes, result.BestScore)

	if flagSimImage != "" {
		opts := boardimg.Options{BlockSize: flagSimBlock, Width: flagSimWidth}
		if err := boardimg.Save(flagSimImage, result.Game.Snapshot(), opts); err != nil {
			return err
		}
		fmt.Fprintf(out, "image=%s\n", flagSimImage)
	}
	return nil
}

// simResult summarizes a headless run.
type simResult struct {
	Game      *snake.Game
	Ticks     int
	Episodes  int
	BestScore int
}

// simulate drives a game with a manual scheduler and a virtual clock.
// onTick is called after every tick.
func simulate(cfg config.SnakeConfig, ticks, turnEvery int, restart bool, logger *log.Logger, onTick func(*snake.Game)) simResult {
	now := time.Unix(0, 0)
	sched := &snake.ManualScheduler{}
	g := snake.New(cfg,
		snake.WithScheduler(sched),
		snake.WithClock(func() time.Time { return now }),
		snake.WithLogger(logger),
	)

	res := simResult{Game: g, Episodes: 1}
	g.Start()
	for res.Ticks < ticks {
		if !sched.Active() {
			if !restart {
				break
			}
			g.Start()
			res.Episodes++
		}

		if turnEvery > 0 && res.Ticks > 0 && res.Ticks%turnEvery == 0 {
			g.SetDirection((g.Direction() + 1) % 4)
		}

		now = now.Add(sched.Interval())
		g.Tick()
		res.Ticks++
		res.BestScore = max(res.BestScore, g.Snapshot().Score)
		if onTick != nil {
			onTick(g)
		}
	}
	return res
}
