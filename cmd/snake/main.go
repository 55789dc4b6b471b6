// snake is a terminal snake game on a wrapping grid.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake serve              - Start SSH server for remote play
//	snake sim                - Run a headless simulation and print the board
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>  - Custom config YAML (default: search ~/.snake/configs, ./configs)
//	--preset <name>  - Difficulty preset: easy, normal, hard, fixed
//	--seed <value>   - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagPreset string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrapping-grid snake game for your terminal",
	Long: `Snake is a terminal snake game. The board wraps at every edge, food
appears at random and expires after a few seconds, and the game ends when
the snake runs into itself.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  sim      - Headless simulation for debugging
  config   - Print the effective configuration

Examples:
  snake play
  snake play --preset hard
  snake serve --ssh :2222
  snake sim --ticks 500 --seed 42
  snake config --preset easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, the preset and the seed override.
// The preset is applied only when one was given on the command line.
func loadConfig() (config.SnakeConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	if flagPreset != "" {
		config.ApplySnakePreset(&cfg, preset)
	}

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, preset, nil
}
