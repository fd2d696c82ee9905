package towerdefense

import "github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"

// Layout is a hardcoded arrangement of towers on the default course.
type Layout struct {
	ID     string
	Title  string
	Towers []sim.Checkpoint
}

// Layouts available to every host.
var (
	LayoutClassic = Layout{
		ID:     "classic",
		Title:  "Tower Defense",
		Towers: []sim.Checkpoint{{X: 4, Y: 5}},
	}
	LayoutUndefended = Layout{
		ID:    "undefended",
		Title: "Tower Defense (Undefended)",
	}
)

// NewWorld builds the world for this layout on the default course.
func (l Layout) NewWorld() (*sim.World, error) {
	return sim.NewWorldWith(sim.DefaultCourse(), l.Towers, 0)
}
