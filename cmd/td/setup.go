package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towerdefense/internal/config"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense"
	"github.com/vovakirdan/tui-towerdefense/internal/registry"
	"github.com/vovakirdan/tui-towerdefense/internal/storage"
)

// defaultLayout is played when no layout argument is given.
const defaultLayout = "classic"

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagTick != 0 {
		cfg.Tick = flagTick
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger. When toFile is set the log goes to
// the configured file, since the terminal UI owns stdout and stderr.
func newLogger(cfg config.Config, toFile bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if toFile {
		path := config.ExpandHome(cfg.Log.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "td",
		Level:           cfg.LogLevel(),
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// layoutArg returns the layout named in args or the default.
func layoutArg(args []string) (string, error) {
	id := defaultLayout
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown layout %q (run 'td list' to see available layouts)", id)
	}
	return id, nil
}

// newGame creates the game for a layout and applies the configured theme.
func newGame(id string, cfg config.Config) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if g, ok := game.(*towerdefense.Game); ok {
		g.SetTheme(cfg.GameTheme())
	}
	return game, nil
}

// openStore opens run history. Failure is reported and the caller
// continues without history.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(config.ExpandHome(cfg.Storage.Path))
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return nil
	}
	return store
}
