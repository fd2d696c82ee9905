package sim

// StepResult summarises one simulation step.
type StepResult struct {
	Events   []Event
	Defeated int // enemies killed by towers
	Leaked   int // enemies that reached the base
	Removed  int
}

// Step advances every live enemy, lets every tower attack it, then sweeps
// dead enemies out of the pool in one compaction pass. Entries are never
// removed while the pool is being walked, so each live enemy is processed
// exactly once per step.
func Step(player *Player, enemies *EnemyPool) StepResult {
	var res StepResult

	for i, n := 0, enemies.Len(); i < n; i++ {
		e := enemies.At(i)
		if !e.Alive() {
			continue
		}

		if e.Advance() {
			player.TakeDamage(e.Damage)
			res.Leaked++
			res.Events = append(res.Events, Event{
				Kind:   EventBaseHit,
				X:      e.X,
				Y:      e.Y,
				Damage: e.Damage,
				Health: player.Health,
			})
			continue
		}

		for j, n := 0, player.Towers.Len(); j < n; j++ {
			if player.Towers.At(j).Attack(e) {
				res.Defeated++
				res.Events = append(res.Events, Event{Kind: EventEnemyDefeated, X: e.X, Y: e.Y})
			}
		}
	}

	res.Removed = enemies.Sweep(func(e *Enemy) bool { return e.Alive() })
	return res
}
