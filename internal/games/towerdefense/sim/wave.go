package sim

import "time"

// Wave manager defaults.
const (
	InitialWave          = 1
	InitialQuota         = 5
	QuotaIncrement       = 2
	DefaultSpawnInterval = 2000 * time.Millisecond
)

// WaveManager decides when enemies spawn and when the next wave begins.
// It is idle between waves and spawning while a wave is in progress.
type WaveManager struct {
	Wave          int
	Quota         int
	Spawned       int
	WaveStart     time.Duration
	Active        bool
	SpawnInterval time.Duration
}

// NewWaveManager returns an idle manager at wave 1 with a quota of 5.
func NewWaveManager(now time.Duration) *WaveManager {
	return &WaveManager{
		Wave:          InitialWave,
		Quota:         InitialQuota,
		WaveStart:     now,
		SpawnInterval: DefaultSpawnInterval,
	}
}

// SpawnTick spawns at most one enemy at the course start when the wave is
// active, the quota is not met and the spawn interval has elapsed. A full
// pool drops the enemy and reports it; the slot still counts toward the
// quota and restarts the interval. Once the quota is met and the pool is
// empty the manager goes idle.
func (w *WaveManager) SpawnTick(now time.Duration, pool *EnemyPool, course *Course) []Event {
	var events []Event

	if w.Active && w.Spawned < w.Quota && now-w.WaveStart >= w.SpawnInterval {
		start := course.Start()
		if err := pool.Add(NewEnemy(course, start.X, start.Y)); err != nil {
			events = append(events, Event{Kind: EventSpawnSkipped, Wave: w.Wave, X: start.X, Y: start.Y})
		} else {
			events = append(events, Event{Kind: EventEnemySpawned, Wave: w.Wave, X: start.X, Y: start.Y})
		}
		w.Spawned++
		w.WaveStart = now
	}

	if w.Active && w.Spawned >= w.Quota && pool.Empty() {
		w.Active = false
		events = append(events, Event{Kind: EventWaveCleared, Wave: w.Wave})
	}

	return events
}

// StartNextWave begins a wave when the manager is idle and no enemies are
// alive: the wave number advances and the quota grows. It is a no-op
// otherwise, so it is safe to call every tick.
func (w *WaveManager) StartNextWave(now time.Duration, pool *EnemyPool) []Event {
	if w.Active || !pool.Empty() {
		return nil
	}

	w.Wave++
	w.Quota += QuotaIncrement
	w.Spawned = 0
	w.WaveStart = now
	w.Active = true

	return []Event{{Kind: EventWaveStarted, Wave: w.Wave}}
}

// Remaining returns how many enemies of the current wave are still to spawn.
func (w *WaveManager) Remaining() int {
	if w.Spawned >= w.Quota {
		return 0
	}
	return w.Quota - w.Spawned
}
