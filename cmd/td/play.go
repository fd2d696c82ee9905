package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-towerdefense/internal/core"
	"github.com/vovakirdan/tui-towerdefense/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The simulation advances one tick per
--tick interval; enemies spawn every two seconds of simulated time.

Controls:
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Logs are written to the configured log file while the game is running.

Examples:
  td play
  td play undefended
  td play --tick 500ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id, err := layoutArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := newGame(id, cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	// Storage is best-effort; the game runs without history
	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	err = tui.Run(game, store, logger, core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Tick:    cfg.Tick,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
