package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towerdefense/internal/core"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense"
	"github.com/vovakirdan/tui-towerdefense/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, l towerdefense.Layout) (Model, *storage.Store, *bytes.Buffer) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	m := NewModel(towerdefense.New(l), store, logger, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Tick: time.Second})
	m.Init()
	return m, store, &buf
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestMapKey(t *testing.T) {
	keys := DefaultPlayKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"p pauses", runeKey('p'), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"other keys ignored", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestTickLogsEvents(t *testing.T) {
	m, _, buf := newTestModel(t, towerdefense.LayoutClassic)
	tick(t, m)

	if !strings.Contains(buf.String(), "Wave 2 started!") {
		t.Errorf("log = %q, expected wave start notice", buf.String())
	}
}

func TestPauseBufferedUntilTick(t *testing.T) {
	m, _, _ := newTestModel(t, towerdefense.LayoutClassic)

	m, _ = press(m, runeKey('p'))
	if m.gameState.Paused {
		t.Fatal("pause should apply on the next tick, not on key press")
	}

	m = tick(t, m)
	if !m.gameState.Paused || m.gameState.Ticks != 0 {
		t.Errorf("state = %+v, expected paused before any tick", m.gameState)
	}
}

func TestGameOverRecordsRunOnce(t *testing.T) {
	m, store, _ := newTestModel(t, towerdefense.LayoutUndefended)

	for i := 0; i < 200 && !m.gameState.GameOver; i++ {
		m = tick(t, m)
	}
	if !m.gameState.GameOver {
		t.Fatal("undefended game never ended")
	}

	for iter := 0; iter < 5; iter++ {
		m = tick(t, m)
	}
	m, cmd := press(m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}

	runs, err := store.TopRuns(towerdefense.LayoutUndefended.ID, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(runs))
	}
	if !runs[0].GameOver || runs[0].Leaked != 1 || runs[0].Wave != 2 {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestRestartStartsNewRun(t *testing.T) {
	m, store, _ := newTestModel(t, towerdefense.LayoutUndefended)

	for i := 0; i < 200 && !m.gameState.GameOver; i++ {
		m = tick(t, m)
	}

	m, _ = press(m, runeKey('r'))
	m = tick(t, m)
	if m.gameState.GameOver || m.gameState.Ticks != 0 {
		t.Fatalf("state after restart = %+v", m.gameState)
	}

	for i := 0; i < 200 && !m.gameState.GameOver; i++ {
		m = tick(t, m)
	}

	runs, _ := store.TopRuns(towerdefense.LayoutUndefended.ID, 10)
	if len(runs) != 2 {
		t.Errorf("recorded %d runs, expected 2", len(runs))
	}
}

func TestRestartIgnoredWhileAlive(t *testing.T) {
	m, _, _ := newTestModel(t, towerdefense.LayoutClassic)
	m = tick(t, m)

	m, _ = press(m, runeKey('r'))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should only be buffered after game over")
	}
}

func TestQuitRecordsUnfinishedRun(t *testing.T) {
	m, store, _ := newTestModel(t, towerdefense.LayoutClassic)
	for iter := 0; iter < 10; iter++ {
		m = tick(t, m)
	}
	press(m, runeKey('q'))

	runs, _ := store.TopRuns(towerdefense.LayoutClassic.ID, 10)
	if len(runs) != 1 || runs[0].GameOver || runs[0].Ticks != 10 {
		t.Errorf("runs = %+v, expected one quit run of 10 ticks", runs)
	}
}

func TestQuitBeforeFirstTickRecordsNothing(t *testing.T) {
	m, store, _ := newTestModel(t, towerdefense.LayoutClassic)
	press(m, runeKey('q'))

	runs, _ := store.TopRuns(towerdefense.LayoutClassic.ID, 10)
	if len(runs) != 0 {
		t.Errorf("recorded %d runs, expected none", len(runs))
	}
}

func TestResizeAndHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t, towerdefense.LayoutClassic)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 30-shortHelpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}

	m, _ = press(m, runeKey('?'))
	if m.screen.Height() != 30-fullHelpHeight {
		t.Errorf("screen height = %d with full help", m.screen.Height())
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _, _ := newTestModel(t, towerdefense.LayoutClassic)
	view := m.View()

	if !strings.Contains(view, "Wave: 1") {
		t.Error("view missing HUD")
	}
	if !strings.Contains(view, "pause") {
		t.Error("view missing help bar")
	}
}
