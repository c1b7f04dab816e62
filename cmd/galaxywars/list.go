package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/galaxy-wars/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rulesets",
	Long:  `Shows every Galaxy Wars ruleset and the game id its scores are kept under.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No rulesets available.")
		return
	}

	fmt.Println("Available rulesets:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID" and "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'galaxywars scores <id>' to see a ruleset's scores.")
}
