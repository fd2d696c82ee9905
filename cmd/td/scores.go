package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-towerdefense/internal/config"
	"github.com/vovakirdan/tui-towerdefense/internal/registry"
	"github.com/vovakirdan/tui-towerdefense/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show best runs for a layout",
	Long: `Display the best recorded runs for a layout, ranked by wave reached and
then enemies defeated.

Examples:
  td scores
  td scores undefended --limit 5
  td scores classic --clear
  td scores --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the layout")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Summarize every layout and list the latest runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	id, err := layoutArg(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(id)
	if err != nil {
		return err
	}

	store, err := storage.Open(config.ExpandHome(cfg.Storage.Path))
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagAll {
		return printAllScores(store)
	}

	if flagClear {
		if err := store.ClearRuns(id); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(id, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'td play %s' or 'td sim %s --record' to record one.\n", id, id)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-6s  %-6s  %-6s  %s\n", "Rank", "Wave", "Defeated", "Leaked", "Ticks", "Result", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-6s  %-6s  %-6s  %s\n", "----", "----", "--------", "------", "-----", "------", "----")
	for i, r := range runs {
		result := "quit"
		if r.GameOver {
			result = "died"
		}
		fmt.Printf("  %-4d  %-5d  %-8d  %-6d  %-6d  %-6s  %s\n",
			i+1, r.Wave, r.Defeated, r.Leaked, r.Ticks, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(id); err == nil {
		fmt.Printf("Runs: %d  Best wave: %d  Avg wave: %.1f  Total defeated: %d\n",
			stats.RunsCount, stats.BestWave, stats.AvgWave, stats.TotalKills)
	}
	return nil
}

func printAllScores(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	layouts := make([]string, 0, len(all))
	for id := range all {
		layouts = append(layouts, id)
	}
	sort.Strings(layouts)

	fmt.Println("All Layouts")
	fmt.Println()
	fmt.Printf("  %-12s  %-4s  %-9s  %-8s  %-8s  %s\n", "Layout", "Runs", "Best wave", "Avg wave", "Defeated", "Last played")
	for _, id := range layouts {
		st := all[id]
		fmt.Printf("  %-12s  %-4d  %-9d  %-8.1f  %-8d  %s\n",
			id, st.RunsCount, st.BestWave, st.AvgWave, st.TotalKills, st.LastPlayed.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println()
	fmt.Println("Latest Runs")
	fmt.Println()
	for _, r := range recent {
		fmt.Printf("  %s  %-12s  wave %-3d  defeated %-4d  leaked %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Layout, r.Wave, r.Defeated, r.Leaked)
	}
	return nil
}
