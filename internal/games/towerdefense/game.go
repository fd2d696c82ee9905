// Package towerdefense adapts the tick simulation to the host Game interface:
// it owns the synthetic clock, collects run statistics and draws the grid,
// HUD and overlays into a core.Screen.
package towerdefense

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-towerdefense/internal/core"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"
	"github.com/vovakirdan/tui-towerdefense/internal/registry"
)

const (
	hudHeight   = 2
	tileWidth   = 2 // terminal cells per tile, keeps the board roughly square
	noticeLines = 3
)

// Game implements registry.Game for one layout.
type Game struct {
	layout   Layout
	theme    Theme
	world    *sim.World
	interval time.Duration
	tick     uint64

	defeated int
	leaked   int
	events   []sim.Event
	notices  []string

	screenW int
	screenH int

	paused bool
	over   bool
}

// New creates a game for the given layout.
func New(l Layout) *Game {
	return &Game{
		layout: l,
		theme:  DefaultTheme(),
	}
}

func init() {
	for _, l := range []Layout{LayoutClassic, LayoutUndefended} {
		l := l
		registry.Register(l.ID, func() registry.Game {
			return New(l)
		})
	}
}

// ID returns the layout identifier.
func (g *Game) ID() string {
	return g.layout.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.layout.Title
}

// SetTheme replaces the tile theme. A nil theme restores the default.
func (g *Game) SetTheme(th Theme) {
	if th == nil {
		th = DefaultTheme()
	}
	g.theme = th
}

// Reset starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	world, err := g.layout.NewWorld()
	if err != nil {
		// Layouts are compiled in; a bad one is a programming error.
		panic(fmt.Sprintf("towerdefense: layout %q: %v", g.layout.ID, err))
	}

	g.world = world
	g.interval = cfg.Tick
	if g.interval <= 0 {
		g.interval = core.DefaultConfig().Tick
	}
	g.tick = 0
	g.defeated = 0
	g.leaked = 0
	g.events = nil
	g.notices = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.over = false
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Now returns the synthetic simulation time of the last tick.
func (g *Game) Now() time.Duration {
	return time.Duration(g.tick) * g.interval
}

// Step advances the game by one tick. The world stops ticking once the
// player is dead; only a restart moves it forward again.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionRestart) && g.over {
		g.Reset(core.RuntimeConfig{
			ScreenW: g.screenW,
			ScreenH: g.screenH,
			Tick:    g.interval,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}

	if g.paused || g.over {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	res := g.world.Tick(g.Now())
	g.events = res.Events
	g.defeated += res.Defeated
	g.leaked += res.Leaked
	g.over = res.GameOver

	for _, ev := range res.Events {
		if ev.Kind == sim.EventEnemySpawned {
			continue
		}
		g.notices = append(g.notices, ev.String())
	}
	if len(g.notices) > noticeLines {
		g.notices = g.notices[len(g.notices)-noticeLines:]
	}

	return core.StepResult{State: g.State()}
}

// Events returns the notices produced by the last Step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Tiles returns the current grid foreground.
func (g *Game) Tiles() [sim.GridCols][sim.GridRows]sim.Tile {
	return g.world.Player.Grid.Tiles()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.defeated,
		Leaked:   g.leaked,
		Wave:     g.world.Waves.Wave,
		Health:   g.world.Player.Health,
		Ticks:    int(g.tick),
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	boardW := sim.GridCols*tileWidth + 2
	boardH := sim.GridRows + 2
	if dst.Width() < boardW || dst.Height() < hudHeight+boardH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, hudHeight+boardH))
		return
	}

	offX := (dst.Width() - boardW) / 2
	board := core.NewRect(offX, hudHeight, boardW, boardH)
	dst.DrawBox(board, core.ColorGray)
	g.renderGrid(dst, board.X+1, board.Y+1)
	g.renderNotices(dst, board.Bottom())

	switch {
	case g.over:
		g.renderOverlay(dst, "You died!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Wave: %d  Health: %d  Defeated: %d  Enemies: %d",
		g.layout.Title, g.world.Waves.Wave, g.world.Player.Health, g.defeated, g.world.Enemies.Len())
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)

	for x, n := 0, dst.Width(); x < n; x++ {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderGrid(dst *core.Screen, ox, oy int) {
	tiles := g.world.Player.Grid.Tiles()
	for x := 0; x < sim.GridCols; x++ {
		for y := 0; y < sim.GridRows; y++ {
			dst.SetCell(ox+x*tileWidth, oy+y, g.theme.Cell(tiles[x][y]))
		}
	}
}

func (g *Game) renderNotices(dst *core.Screen, y int) {
	for i, n := range g.notices {
		dst.DrawText(1, y+i, n, core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
