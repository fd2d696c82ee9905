// Package config provides YAML-based host configuration for td: tick
// rate, window size, tile theme, sprites, logging and storage paths.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towerdefense/internal/core"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"
)

// Config is the complete host configuration.
type Config struct {
	Tick    time.Duration        `yaml:"tick"`
	Window  WindowConfig         `yaml:"window"`
	Theme   map[string]TileStyle `yaml:"theme"`
	Sprites map[string]string    `yaml:"sprites"`
	Log     LogConfig            `yaml:"log"`
	Storage StorageConfig        `yaml:"storage"`
}

// WindowConfig sizes the graphical window in pixels.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TileStyle is the terminal look of one tile kind. Empty fields keep
// the default look.
type TileStyle struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // used while the terminal UI owns stdout
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// tileKeys maps config keys to grid tiles.
var tileKeys = map[string]sim.Tile{
	"empty": sim.TileEmpty,
	"track": sim.TileTrack,
	"tower": sim.TileTower,
	"enemy": sim.TileEnemy,
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %v", c.Tick))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	for key, style := range c.Theme {
		if _, ok := tileKeys[key]; !ok {
			errs = append(errs, fmt.Errorf("theme: unknown tile %q", key))
			continue
		}
		if utf8.RuneCountInString(style.Glyph) > 1 {
			errs = append(errs, fmt.Errorf("theme.%s: glyph must be a single character, got %q", key, style.Glyph))
		}
		if _, ok := core.ParseColor(style.Color); style.Color != "" && !ok {
			errs = append(errs, fmt.Errorf("theme.%s: unknown color %q", key, style.Color))
		}
	}
	for key := range c.Sprites {
		if _, ok := tileKeys[key]; !ok {
			errs = append(errs, fmt.Errorf("sprites: unknown tile %q", key))
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// GameTheme converts the theme section to cells for the game renderer.
// Missing tiles keep their default look.
func (c Config) GameTheme() towerdefense.Theme {
	th := towerdefense.DefaultTheme()
	for key, style := range c.Theme {
		tile, ok := tileKeys[key]
		if !ok {
			continue
		}
		cell := th[tile]
		if r, _ := utf8.DecodeRuneInString(style.Glyph); r != utf8.RuneError {
			cell.Rune = r
		}
		if col, ok := core.ParseColor(style.Color); ok {
			cell.Color = col
		}
		th[tile] = cell
	}
	return th
}

// SpritePaths returns the configured sprite file per tile.
func (c Config) SpritePaths() map[sim.Tile]string {
	paths := make(map[sim.Tile]string, len(c.Sprites))
	for key, p := range c.Sprites {
		if tile, ok := tileKeys[key]; ok && p != "" {
			paths[tile] = ExpandHome(p)
		}
	}
	return paths
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
