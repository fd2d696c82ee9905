// Package sim contains the tower defense simulation: course, enemies, towers,
// the wave manager and the per-tick step. It is UI-agnostic and deterministic;
// the only notion of time is the timestamp handed to World.Tick.
package sim

import "errors"

// Grid and pool dimensions.
const (
	GridCols = 16
	GridRows = 16

	MaxTowers      = 10
	MaxEnemies     = 128
	MaxCheckpoints = 10
)

// Fixed unit stats.
const (
	EnemyHealth = 50
	EnemyDamage = 70

	TowerRange  = 4
	TowerDamage = 4

	PlayerHealth = 5
)

// DeadHealth marks an enemy as defeated or finished, pending removal.
const DeadHealth = -1

var (
	ErrPoolFull    = errors.New("sim: pool at capacity")
	ErrOutOfBounds = errors.New("sim: position outside grid")
	ErrCourseFull  = errors.New("sim: too many checkpoints")
	ErrEmptyCourse = errors.New("sim: course has no checkpoints")
)

// Tile is a single grid symbol handed to renderers.
type Tile byte

const (
	TileEmpty Tile = '.'
	TileTower Tile = 'T'
	TileEnemy Tile = 'E'
	TileTrack Tile = '#'
)

// String returns the symbol as a one-character string.
func (t Tile) String() string {
	return string(rune(t))
}

// Checkpoint is a waypoint coordinate on the enemy path.
type Checkpoint struct {
	X, Y int
}

// InBounds reports whether (x, y) lies on the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < GridCols && y >= 0 && y < GridRows
}

// Manhattan returns |x1-x2| + |y1-y2|.
func Manhattan(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// stepToward moves from by one unit towards to.
func stepToward(from, to int) int {
	switch {
	case from > to:
		return from - 1
	case from < to:
		return from + 1
	default:
		return from
	}
}
