package eventlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"
)

func newTestLogger(level log.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: level})
	return New(l), &buf
}

func TestLogEventMessages(t *testing.T) {
	tests := []struct {
		name     string
		ev       sim.Event
		contains []string
	}{
		{"wave started", sim.Event{Kind: sim.EventWaveStarted, Wave: 2}, []string{"Wave 2 started!", "wave=2"}},
		{"defeated", sim.Event{Kind: sim.EventEnemyDefeated, X: 1, Y: 6}, []string{"Enemy [1, 6] defeated.", "x=1", "y=6"}},
		{"spawn skipped", sim.Event{Kind: sim.EventSpawnSkipped, Wave: 60}, []string{"Max enemies reached.", "capacity=128"}},
		{"base hit", sim.Event{Kind: sim.EventBaseHit, Damage: 70, Health: -65}, []string{"damage=70", "health=-65"}},
		{"game over", sim.Event{Kind: sim.EventGameOver, Wave: 1, Health: -65}, []string{"You died!"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, buf := newTestLogger(log.DebugLevel)
			l.LogEvent(tc.ev)

			out := buf.String()
			for _, s := range tc.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output %q missing %q", out, s)
				}
			}
		})
	}
}

func TestLogLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(log.InfoLevel)

	l.Log([]sim.Event{
		{Kind: sim.EventEnemySpawned, X: 3, Y: 7},
		{Kind: sim.EventEnemyDefeated, X: 4, Y: 6},
		{Kind: sim.EventWaveCleared, Wave: 1},
	})

	out := buf.String()
	if strings.Contains(out, "defeated") || strings.Contains(out, "spawned") {
		t.Errorf("debug events leaked at info level: %q", out)
	}
	if !strings.Contains(out, "Wave 1 cleared.") {
		t.Errorf("output %q missing wave cleared notice", out)
	}
}

func TestLogPreservesOrder(t *testing.T) {
	l, buf := newTestLogger(log.InfoLevel)

	l.Log([]sim.Event{
		{Kind: sim.EventWaveCleared, Wave: 1},
		{Kind: sim.EventWaveStarted, Wave: 2},
	})

	out := buf.String()
	if strings.Index(out, "Wave 1 cleared.") > strings.Index(out, "Wave 2 started!") {
		t.Errorf("events logged out of order: %q", out)
	}
}
