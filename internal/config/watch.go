package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a snake config file whenever it changes on disk.
// Games already running keep the config they were built with.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher watches path. The parent directory is watched so that editors
// which replace the file on save are seen too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	return &Watcher{path: abs, watcher: w}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers every successfully parsed version of the file to onChange and
// read or validation failures to onError. It blocks until ctx is done or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func(SnakeConfig), onError func(error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := w.load()
			if err != nil {
				onError(err)
				continue
			}
			onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			onError(fmt.Errorf("config: watch %s: %w", w.path, err))
		}
	}
}

func (w *Watcher) load() (SnakeConfig, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", w.path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to parse %s: %w", w.path, err)
	}
	return cfg, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// ResolvePath returns the file LoadSnake would read, or "" when it would
// fall back to the embedded defaults. Like LoadSnake, it skips search
// locations that cannot be read or parsed.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, p := range []string{userConfigPath("snake.yaml"), filepath.Join("configs", "snake.yaml")} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if _, err := Parse(data); err == nil {
			return p
		}
	}
	return ""
}
