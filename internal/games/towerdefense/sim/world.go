package sim

import "time"

// World bundles the course, player, enemies and wave manager.
type World struct {
	Course  *Course
	Player  *Player
	Enemies *EnemyPool
	Waves   *WaveManager

	over bool
}

// TickResult is returned by World.Tick.
type TickResult struct {
	Events   []Event
	Defeated int
	Leaked   int
	GameOver bool
}

// NewWorld builds the default setup: the hardcoded course drawn as track,
// a tower at (4, 5) and an idle wave manager.
func NewWorld(now time.Duration) *World {
	w, err := NewWorldWith(DefaultCourse(), []Checkpoint{{X: 4, Y: 5}}, now)
	if err != nil {
		panic(err)
	}
	return w
}

// NewWorldWith builds a world for course with towers placed at the given
// positions.
func NewWorldWith(course *Course, towers []Checkpoint, now time.Duration) (*World, error) {
	player := NewPlayer()
	player.Grid.DrawTrack(course)
	for _, t := range towers {
		if err := player.PlaceTower(t.X, t.Y); err != nil {
			return nil, err
		}
	}

	w := &World{
		Course:  course,
		Player:  player,
		Enemies: NewEnemyPool(),
		Waves:   NewWaveManager(now),
	}
	w.Recompute()
	return w, nil
}

// Tick runs one full tick: spawn decision, wave start, simulation step and
// grid recompute.
func (w *World) Tick(now time.Duration) TickResult {
	var res TickResult

	res.Events = append(res.Events, w.Waves.SpawnTick(now, w.Enemies, w.Course)...)
	res.Events = append(res.Events, w.Waves.StartNextWave(now, w.Enemies)...)

	step := Step(w.Player, w.Enemies)
	res.Events = append(res.Events, step.Events...)
	res.Defeated = step.Defeated
	res.Leaked = step.Leaked

	w.Recompute()

	if w.Player.Dead() && !w.over {
		w.over = true
		res.Events = append(res.Events, Event{Kind: EventGameOver, Wave: w.Waves.Wave, Health: w.Player.Health})
	}
	res.GameOver = w.over
	return res
}

// Recompute refreshes the grid foreground from the current state.
func (w *World) Recompute() {
	w.Player.Grid.Recompute(w.Player.Towers, w.Enemies)
}

// GameOver reports whether the player's health has run out.
func (w *World) GameOver() bool {
	return w.Player.Dead()
}
