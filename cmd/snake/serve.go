package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagWatch       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game sized to its terminal. Without
--preset every player picks a difficulty first.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on :23234 with auto-generated key
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --preset hard             # Everyone plays hard
  snake serve --config ./snake.yaml --watch  # Reload config for new sessions

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file for new sessions when it changes")
}

func runServe(_ *cobra.Command, _ []string) error {
	snakeCfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Snake:       snakeCfg,
	}
	if flagPreset != "" {
		cfg.Preset = preset
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting snake SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagWatch {
		if err := watchConfig(ctx, server, preset); err != nil {
			return err
		}
	}

	return server.ListenAndServe(ctx)
}

// watchConfig keeps the server's session config in sync with the config file.
func watchConfig(ctx context.Context, server *tui.SSHServer, preset config.DifficultyPreset) error {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		return errors.New("--watch needs a config file; pass --config or create ~/.snake/configs/snake.yaml")
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	logger := server.Logger()
	logger.Info("watching config", "path", w.Path())

	go func() {
		defer w.Close()
		//nolint:errcheck // Returns only when ctx is done
		w.Run(ctx, func(cfg config.SnakeConfig) {
			if flagPreset != "" {
				config.ApplySnakePreset(&cfg, preset)
			}
			if flagSeed != 0 {
				cfg.Seed = flagSeed
			}
			server.SetSnakeConfig(cfg)
		}, func(err error) {
			logger.Warn("config not reloaded", "error", err)
		})
	}()
	return nil
}
