package towerdefense

import "strings"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and run records.
type Snapshot struct {
	Layout   string
	Tick     uint64
	Wave     int
	Quota    int
	Spawned  int
	Enemies  int
	Health   int
	Defeated int
	Leaked   int
	Grid     string
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.over:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Layout:   g.layout.ID,
		Tick:     g.tick,
		Wave:     g.world.Waves.Wave,
		Quota:    g.world.Waves.Quota,
		Spawned:  g.world.Waves.Spawned,
		Enemies:  g.world.Enemies.Len(),
		Health:   g.world.Player.Health,
		Defeated: g.defeated,
		Leaked:   g.leaked,
		Grid:     strings.Join(g.world.Player.Grid.Rows(), "\n"),
		State:    state,
	}
}
