// Package eventlog writes simulation notices to a structured logger.
package eventlog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"
)

// Logger maps sim events to log levels.
type Logger struct {
	log *log.Logger
}

// New wraps l. A nil logger uses the package default.
func New(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{log: l}
}

// Log writes every event in order.
func (l *Logger) Log(events []sim.Event) {
	for _, ev := range events {
		l.LogEvent(ev)
	}
}

// LogEvent writes a single event.
func (l *Logger) LogEvent(ev sim.Event) {
	msg := ev.String()
	switch ev.Kind {
	case sim.EventWaveStarted, sim.EventWaveCleared:
		l.log.Info(msg, "wave", ev.Wave)
	case sim.EventEnemySpawned, sim.EventEnemyDefeated:
		l.log.Debug(msg, "wave", ev.Wave, "x", ev.X, "y", ev.Y)
	case sim.EventSpawnSkipped:
		l.log.Warn(msg, "wave", ev.Wave, "capacity", sim.MaxEnemies)
	case sim.EventBaseHit:
		l.log.Warn(msg, "damage", ev.Damage, "health", ev.Health)
	case sim.EventGameOver:
		l.log.Error(msg, "wave", ev.Wave, "health", ev.Health)
	default:
		l.log.Info(msg)
	}
}
