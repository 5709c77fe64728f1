package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all editions",
	Long:  `Shows every registered edition with the mechanics it adds.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

// describer matches games that summarize their rules.
type describer interface {
	Description() string
}

func runList(_ *cobra.Command, _ []string) {
	editions := registry.List()
	if len(editions) == 0 {
		fmt.Println("No editions available.")
		return
	}

	rows := make([][]string, 0, len(editions))
	for _, e := range editions {
		about := ""
		if g, err := registry.Create(e.ID); err == nil {
			if d, ok := g.(describer); ok {
				about = d.Description()
			}
		}
		rows = append(rows, []string{e.ID, e.Title, about})
	}

	fmt.Println(renderTable([]string{"ID", "Title", "Rules"}, rows))
	fmt.Println("Run 'snake play <id>' to play an edition.")
}
