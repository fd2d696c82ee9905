package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towerdefense/internal/config"
	"github.com/vovakirdan/tui-towerdefense/internal/storage"
)

// isolate points HOME at a temp dir and restores the global flags.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgPath, dbPath, level, ticks, record := flagConfig, flagDBPath, flagLogLevel, flagTicks, flagRecord
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagLogLevel, flagTicks, flagRecord = cfgPath, dbPath, level, ticks, record
	})

	flagConfig = ""
	flagDBPath = filepath.Join(home, "runs.db")
	flagLogLevel = "error"
	return home
}

func TestLayoutArg(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
		wantErr  bool
	}{
		{nil, "classic", false},
		{[]string{"undefended"}, "undefended", false},
		{[]string{"nope"}, "", true},
	}

	for _, tc := range tests {
		id, err := layoutArg(tc.args)
		if (err != nil) != tc.wantErr || id != tc.expected {
			t.Errorf("layoutArg(%v) = %q, %v, expected %q", tc.args, id, err, tc.expected)
		}
	}
}

func TestCommandsReturnErrors(t *testing.T) {
	isolate(t)

	if err := runPlay(playCmd, []string{"nope"}); err == nil || !strings.Contains(err.Error(), "unknown layout") {
		t.Errorf("runPlay() = %v, expected unknown layout error", err)
	}

	flagTicks = 0
	if err := runSim(simCmd, nil); err == nil || !strings.Contains(err.Error(), "--ticks") {
		t.Errorf("runSim() = %v, expected ticks error", err)
	}
}

func TestRunWindowSpriteErrorReturns(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(home, "td.yaml")
	body := "sprites:\n  empty: " + filepath.Join(home, "missing.png") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	flagConfig = path

	err := runWindow(windowCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "load sprite") {
		t.Errorf("runWindow() = %v, expected sprite load error", err)
	}
}

func TestRunSimRecordsRun(t *testing.T) {
	isolate(t)
	flagTicks = 50
	flagRecord = true

	if err := runSim(simCmd, nil); err != nil {
		t.Fatalf("runSim() failed: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Ticks != 50 || runs[0].GameOver {
		t.Errorf("runs = %+v, expected one unfinished 50-tick run", runs)
	}
}

func TestOpenStoreExpandsHome(t *testing.T) {
	home := isolate(t)

	cfg := config.Default()
	cfg.Storage.Path = "~/.td/history.db"

	store := openStore(cfg, log.New(io.Discard))
	if store == nil {
		t.Fatal("openStore() = nil, expected a store")
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".td", "history.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
