package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quad-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered games",
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "TITLE", "AUTOPILOT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})
	for _, g := range games {
		pilot := "-"
		if hasAutopilot(g.ID) {
			pilot = "yes"
		}
		t.Row(g.ID, g.Title, pilot)
	}

	fmt.Println(t)
	fmt.Println("Play with 'arcade play <id>', watch with 'arcade simulate <id>'.")
}

// hasAutopilot reports whether the game can play itself under simulate.
func hasAutopilot(id string) bool {
	g, err := registry.Create(id)
	if err != nil {
		return false
	}
	_, ok := g.(registry.Pilot)
	return ok
}
