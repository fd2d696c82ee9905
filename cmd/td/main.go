// td is a grid tower defense that runs in the terminal, in a window or headless.
//
// Usage:
//
//	td list                  - List available layouts
//	td play [layout]         - Play in the terminal
//	td window [layout]       - Play in a graphical window
//	td sim [layout]          - Run a headless simulation
//	td history               - Browse recorded runs
//	td scores [layout]       - Show best runs for a layout
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.td/config.yaml, ./configs/td.yaml)
//	--db <path>         - Run history database (default: from config)
//	--log-level <lvl>   - debug, info, warn or error
//	--tick <duration>   - Simulation tick interval (default: 1s)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import layouts to register them
	_ "github.com/vovakirdan/tui-towerdefense/internal/games/towerdefense"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagTick     time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "td",
	Short:         "td - a grid tower defense",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `td runs waves of enemies along a fixed course on a 16x16 grid.
Towers fire at every enemy in range each tick; enemies that reach the
end of the course damage the player.

Available commands:
  list     - Show all available layouts
  play     - Play in the terminal
  window   - Play in a graphical window
  sim      - Run a headless simulation and print the result
  history  - Browse recorded runs
  scores   - Show best runs

Examples:
  td play
  td play undefended --tick 250ms
  td window --config ./td.yaml
  td sim --ticks 300 --record
  td scores classic`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Simulation tick interval (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(scoresCmd)
}
