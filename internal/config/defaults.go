package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/td.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no file parses.
func Default() Config {
	return Config{
		Tick: time.Second,
		Window: WindowConfig{
			Width:  320,
			Height: 320,
			Title:  "Tower Defense",
		},
		Theme: map[string]TileStyle{
			"empty": {Glyph: ".", Color: "gray"},
			"track": {Glyph: "#", Color: "yellow"},
			"tower": {Glyph: "T", Color: "bright_cyan"},
			"enemy": {Glyph: "E", Color: "bright_red"},
		},
		Sprites: map[string]string{},
		Log: LogConfig{
			Level: "info",
			File:  "~/.td/td.log",
		},
		Storage: StorageConfig{
			Path: "~/.td/td.db",
		},
	}
}
