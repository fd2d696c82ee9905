package sim

// Tower is a fixed emplacement that damages every live enemy in range each tick.
type Tower struct {
	X, Y   int
	Range  int
	Damage int
}

// NewTower creates a tower with the fixed stats at (x, y).
func NewTower(x, y int) Tower {
	return Tower{X: x, Y: y, Range: TowerRange, Damage: TowerDamage}
}

// Distance returns the Manhattan distance from the tower to e.
func (t Tower) Distance(e *Enemy) int {
	return Manhattan(t.X, t.Y, e.X, e.Y)
}

// InRange reports whether e is within the tower's range.
func (t Tower) InRange(e *Enemy) bool {
	return t.Distance(e) <= t.Range
}

// Attack damages e if it is alive and in range. It returns true when this
// call brought the enemy's health to zero or below; the enemy is then
// marked dead.
func (t Tower) Attack(e *Enemy) (killed bool) {
	if e.Health <= 0 || !t.InRange(e) {
		return false
	}

	e.Health -= t.Damage
	if e.Health <= 0 {
		e.Kill()
		return true
	}
	return false
}
