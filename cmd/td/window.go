package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-towerdefense/internal/platform/window"
	"github.com/vovakirdan/tui-towerdefense/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window [layout]",
	Short: "Play in a graphical window",
	Long: `Open a window and draw the grid with sprites. Tiles with a sprite file
in the config use it; the rest are drawn as squares in the theme color.
A sprite that cannot be loaded stops the command before the game starts.

Controls:
  P/Esc  - Pause
  R      - Restart (after game over)
  Q      - Quit

Examples:
  td window
  td window --config ./sprites.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	id, err := layoutArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := newGame(id, cfg)
	if err != nil {
		return err
	}

	opts := window.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		Tick:   cfg.Tick,
	}
	cellW, cellH := opts.CellSize()
	sprites, err := window.LoadSprites(cfg.SpritePaths(), cfg.GameTheme(), cellW, cellH)
	if err != nil {
		return err
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	state, runErr := window.Run(window.NewHost(game, sprites, logger, opts))

	if store != nil && state.Ticks > 0 {
		if _, err := store.SaveRun(storage.NewRun(id, state)); err != nil {
			logger.Warn("could not record run", "error", err)
		}
	}
	return runErr
}
