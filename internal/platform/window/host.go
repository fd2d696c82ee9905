// Package window provides the Ebiten host for td: a graphical grid drawn
// from a sprite registry, driven at the simulation tick rate.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-towerdefense/internal/core"
	"github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense/sim"
	"github.com/vovakirdan/tui-towerdefense/internal/platform/eventlog"
	"github.com/vovakirdan/tui-towerdefense/internal/registry"
)

var overlayColor = color.RGBA{A: 0xa0}

// Options configures the window.
type Options struct {
	Width  int
	Height int
	Title  string
	Tick   time.Duration
}

// CellSize returns the pixel size of one grid tile.
func (o Options) CellSize() (w, h int) {
	return max(o.Width/sim.GridCols, 1), max(o.Height/sim.GridRows, 1)
}

// Host implements ebiten.Game around a registry.Game.
type Host struct {
	game    registry.Game
	sprites *Sprites
	opts    Options
	clock   *core.FixedStep
	events  *eventlog.Logger
	input   core.InputFrame
	state   core.GameState
	start   time.Time
	now     func() time.Duration
}

// NewHost creates a host. The game is reset immediately.
func NewHost(game registry.Game, sprites *Sprites, logger *log.Logger, opts Options) *Host {
	if opts.Tick <= 0 {
		opts.Tick = core.DefaultConfig().Tick
	}

	h := &Host{
		game:    game,
		sprites: sprites,
		opts:    opts,
		clock:   core.NewFixedStep(opts.Tick),
		events:  eventlog.New(logger),
		input:   core.NewInputFrame(),
		start:   time.Now(),
	}
	h.now = func() time.Duration { return time.Since(h.start) }

	game.Reset(core.RuntimeConfig{Tick: opts.Tick})
	h.state = game.State()
	h.clock.Start(0)
	return h
}

// State returns the game state after the last tick.
func (h *Host) State() core.GameState {
	return h.state
}

// Update polls input every frame and steps the game when a tick is due.
func (h *Host) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		h.input.Set(core.ActionPause)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if h.state.GameOver {
			h.input.Set(core.ActionRestart)
		}
	}

	h.advance(h.now())
	return nil
}

// advance steps the game once if a tick is due at now. Buffered input is
// consumed by that step.
func (h *Host) advance(now time.Duration) bool {
	if !h.clock.Due(now) {
		return false
	}

	h.state = h.game.Step(h.input).State
	h.events.Log(h.game.Events())
	h.input.Clear()
	return true
}

// Draw renders the grid, HUD and overlays.
func (h *Host) Draw(screen *ebiten.Image) {
	tiles := h.game.Tiles()
	for x := range sim.GridCols {
		for y := range sim.GridRows {
			h.sprites.DrawTile(screen, tiles[x][y], x, y)
		}
	}

	ebitenutil.DebugPrintAt(screen, hudText(h.state), 2, 2)

	switch {
	case h.state.GameOver:
		h.drawOverlay(screen, "You died!\nR restart  Q quit")
	case h.state.Paused:
		h.drawOverlay(screen, "Paused\nP continue")
	}
}

func (h *Host) drawOverlay(screen *ebiten.Image, text string) {
	w, ht := float32(h.opts.Width), float32(h.opts.Height)
	vector.DrawFilledRect(screen, 0, ht/2-20, w, 40, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, text, h.opts.Width/2-50, h.opts.Height/2-16)
}

func hudText(st core.GameState) string {
	return fmt.Sprintf("Wave %d  HP %d  Kills %d", st.Wave, st.Health, st.Score)
}

// Layout returns the fixed logical screen size.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.opts.Width, h.opts.Height
}

// Run opens the window and blocks until it is closed. It returns the game
// state at exit for run recording.
func Run(h *Host) (core.GameState, error) {
	ebiten.SetWindowSize(h.opts.Width, h.opts.Height)
	ebiten.SetWindowTitle(h.opts.Title)

	if err := ebiten.RunGame(h); err != nil {
		return h.state, fmt.Errorf("window: %w", err)
	}
	return h.state, nil
}
