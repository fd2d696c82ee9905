package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-towerdefense/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available layouts",
	Long:  `Shows every tower layout that can be played on the default course.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return nil
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, l := range layouts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'td play <id>' to play a layout.")
	return nil
}
