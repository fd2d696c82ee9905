package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-towerdefense/internal/config"
	"github.com/vovakirdan/tui-towerdefense/internal/platform/tui"
	"github.com/vovakirdan/tui-towerdefense/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs",
	Long: `Open an interactive table of recorded runs, best first, one tab per layout.

Controls:
  Up/Down    - Scroll
  Tab        - Next layout
  Shift+Tab  - Previous layout
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(config.ExpandHome(cfg.Storage.Path))
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunHistory(store, width, height)
}
