package towerdefense

import (
	"github.com/vovakirdan/tui-towerdefense/internal/core"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"
)

// Theme maps grid tiles to screen cells.
type Theme map[sim.Tile]core.Cell

// DefaultTheme draws each tile as its own symbol.
func DefaultTheme() Theme {
	return Theme{
		sim.TileEmpty: {Rune: '.', Color: core.ColorGray},
		sim.TileTrack: {Rune: '#', Color: core.ColorYellow},
		sim.TileTower: {Rune: 'T', Color: core.ColorBrightCyan},
		sim.TileEnemy: {Rune: 'E', Color: core.ColorBrightRed},
	}
}

// Cell returns the cell for t. Tiles without an entry render as empty.
func (th Theme) Cell(t sim.Tile) core.Cell {
	if c, ok := th[t]; ok {
		return c
	}
	if c, ok := th[sim.TileEmpty]; ok {
		return c
	}
	return core.Cell{Rune: rune(sim.TileEmpty), Color: core.ColorDefault}
}
