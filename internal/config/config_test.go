package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towerdefense/internal/core"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "td.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse embedded: %v", err)
	}
	def := Default()

	if cfg.Tick != def.Tick {
		t.Errorf("Tick = %v, expected %v", cfg.Tick, def.Tick)
	}
	if cfg.Window != def.Window {
		t.Errorf("Window = %+v, expected %+v", cfg.Window, def.Window)
	}
	if cfg.Log != def.Log || cfg.Storage != def.Storage {
		t.Errorf("Log/Storage = %+v %+v", cfg.Log, cfg.Storage)
	}
	for key, style := range def.Theme {
		if cfg.Theme[key] != style {
			t.Errorf("Theme[%s] = %+v, expected %+v", key, cfg.Theme[key], style)
		}
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, "tick: 250ms\nlog:\n  level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Tick != 250*time.Millisecond {
		t.Errorf("Tick = %v, expected 250ms", cfg.Tick)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, expected debug", cfg.LogLevel())
	}
	if cfg.Window.Width != 320 {
		t.Errorf("Window.Width = %d, expected default 320", cfg.Window.Width)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero tick", "tick: 0s\n", "tick must be positive"},
		{"bad window", "window: {width: -1, height: 10}\n", "window size"},
		{"unknown tile", "theme:\n  wall: {glyph: W}\n", `unknown tile "wall"`},
		{"long glyph", "theme:\n  tower: {glyph: TT}\n", "single character"},
		{"bad color", "theme:\n  enemy: {color: chartreuse}\n", "unknown color"},
		{"bad sprite key", "sprites:\n  boss: boss.png\n", "sprites"},
		{"bad level", "log: {level: loud}\n", "log.level"},
		{"bad yaml", "tick: [\n", "failed to parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Load() error = %v, expected to contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingCustom(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestGameTheme(t *testing.T) {
	cfg := Default()
	cfg.Theme["enemy"] = TileStyle{Glyph: "@"}
	cfg.Theme["track"] = TileStyle{Color: "orange"}

	th := cfg.GameTheme()
	if c := th[sim.TileEnemy]; c.Rune != '@' || c.Color != core.ColorBrightRed {
		t.Errorf("enemy = %+v, expected '@' keeping bright red", c)
	}
	if c := th[sim.TileTrack]; c.Rune != '#' || c.Color != core.ColorOrange {
		t.Errorf("track = %+v, expected '#' in orange", c)
	}
}

func TestSpritePaths(t *testing.T) {
	cfg := Default()
	cfg.Sprites = map[string]string{"tower": "/tmp/tower.png", "enemy": "", "boss": "x.png"}

	paths := cfg.SpritePaths()
	if len(paths) != 1 || paths[sim.TileTower] != "/tmp/tower.png" {
		t.Errorf("SpritePaths() = %v", paths)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, expected string
	}{
		{"~/.td/td.db", filepath.Join(home, ".td", "td.db")},
		{"~", home},
		{"/var/td.db", "/var/td.db"},
		{"~user/x", "~user/x"},
	}
	for _, tc := range tests {
		if got := ExpandHome(tc.in); got != tc.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
