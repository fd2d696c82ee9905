package sim

// Enemy walks the course towards the base.
type Enemy struct {
	X, Y           int
	Health         int
	Damage         int
	NextCheckpoint int
	Course         *Course // shared, not owned
}

// NewEnemy creates an enemy with the fixed stats at (x, y) heading for
// the first checkpoint of course.
func NewEnemy(course *Course, x, y int) Enemy {
	return Enemy{
		X:              x,
		Y:              y,
		Health:         EnemyHealth,
		Damage:         EnemyDamage,
		NextCheckpoint: 0,
		Course:         course,
	}
}

// Alive reports whether the enemy has not been marked dead.
func (e *Enemy) Alive() bool {
	return e.Health != DeadHealth
}

// Kill marks the enemy dead.
func (e *Enemy) Kill() {
	e.Health = DeadHealth
}

// Advance moves the enemy one step towards its next checkpoint. Each axis
// moves independently, so diagonal steps happen. When the enemy stands on
// its checkpoint it targets the next one, or, at the last checkpoint, it is
// marked dead and Advance returns true. The caller charges the player.
func (e *Enemy) Advance() (reachedEnd bool) {
	if !e.Alive() || e.Course == nil {
		return false
	}

	cp := e.Course.At(e.NextCheckpoint)
	e.X = stepToward(e.X, cp.X)
	e.Y = stepToward(e.Y, cp.Y)

	if e.X != cp.X || e.Y != cp.Y {
		return false
	}

	if e.NextCheckpoint+1 < e.Course.Len() {
		e.NextCheckpoint++
		return false
	}

	e.Kill()
	return true
}
