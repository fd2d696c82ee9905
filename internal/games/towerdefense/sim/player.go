package sim

import "fmt"

// Player owns the base health, the towers and the grid.
type Player struct {
	Health int
	Towers *TowerPool
	Grid   *Grid
}

// NewPlayer returns a player with full health, no towers and an empty grid.
func NewPlayer() *Player {
	return &Player{
		Health: PlayerHealth,
		Towers: NewTowerPool(),
		Grid:   NewGrid(),
	}
}

// PlaceTower adds a tower with the fixed stats at (x, y).
func (p *Player) PlaceTower(x, y int) error {
	if !InBounds(x, y) {
		return fmt.Errorf("%w: tower at (%d, %d)", ErrOutOfBounds, x, y)
	}
	return p.Towers.Add(NewTower(x, y))
}

// TakeDamage reduces health by amount.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
}

// Dead reports whether the game is over.
func (p *Player) Dead() bool {
	return p.Health <= 0
}
