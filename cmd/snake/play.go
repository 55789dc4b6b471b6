package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Without --preset a picker lets you choose the difficulty first.

Controls:
  Arrows/WASD/hjkl - Steer
  P/Space/Esc      - Pause and resume
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C         - Quit

Presets:
  easy   - More food that lasts longer
  normal - Reference spawn and expiry rates
  hard   - Scarce food that expires quickly
  fixed  - Config file values unchanged

Examples:
  snake play
  snake play --preset hard
  snake play --config ./my-snake.yaml --log ./snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.Display.Width = w
		cfg.Display.Height = h
	}

	logger, closeLog, err := openLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagPreset == "" {
		err = tui.RunSession(cfg, logger)
	} else {
		err = tui.Run(cfg, preset, logger)
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLog returns a debug logger writing to path, or nil when path is empty.
// The terminal belongs to the game, so logs never go to stderr here.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
