package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Run: func(cmd *cobra.Command, _ []string) {
		printList(cmd.OutOrStdout(), registry.List())
	},
}

func printList(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No variants available.")
		return
	}

	fmt.Fprintln(w, "Available variants:")
	fmt.Fprintln(w)

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}
	fmt.Fprintf(w, "  %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", idWidth, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", idWidth, g.ID, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'brickbreaker play <id>' to play.")
}
