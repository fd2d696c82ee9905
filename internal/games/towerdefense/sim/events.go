package sim

import "fmt"

// EventKind identifies a simulation notice.
type EventKind int

const (
	EventWaveStarted EventKind = iota
	EventWaveCleared
	EventEnemySpawned
	EventSpawnSkipped
	EventEnemyDefeated
	EventBaseHit
	EventGameOver
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case EventWaveStarted:
		return "wave_started"
	case EventWaveCleared:
		return "wave_cleared"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventSpawnSkipped:
		return "spawn_skipped"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventBaseHit:
		return "base_hit"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notice produced during a tick. Fields not relevant to the
// kind are zero.
type Event struct {
	Kind   EventKind
	Wave   int
	X, Y   int
	Damage int
	Health int // player health after a base hit
}

// String renders the event as a short human-readable line.
func (e Event) String() string {
	switch e.Kind {
	case EventWaveStarted:
		return fmt.Sprintf("Wave %d started!", e.Wave)
	case EventWaveCleared:
		return fmt.Sprintf("Wave %d cleared.", e.Wave)
	case EventEnemySpawned:
		return fmt.Sprintf("Enemy spawned at [%d, %d].", e.X, e.Y)
	case EventSpawnSkipped:
		return "Max enemies reached."
	case EventEnemyDefeated:
		return fmt.Sprintf("Enemy [%d, %d] defeated.", e.X, e.Y)
	case EventBaseHit:
		return fmt.Sprintf("Enemy reached the base for %d damage, health %d.", e.Damage, e.Health)
	case EventGameOver:
		return "You died!"
	default:
		return e.Kind.String()
	}
}
