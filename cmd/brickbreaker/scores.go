package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Print the best runs of a variant",
	Long: `Print the best runs of the given variant, "scored" when none is given.

Examples:
  brickbreaker scores
  brickbreaker scores classic --limit 20
  brickbreaker scores scored --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs and the high score of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	variant := defaultVariant
	if len(args) == 1 {
		variant = args[0]
	}
	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearVariant(variant); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores of %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(variant, flagLimit)
	if err != nil {
		return err
	}
	best, err := store.HighScore(variant)
	if err != nil {
		return err
	}
	printRuns(cmd.OutOrStdout(), game.Title(), variant, runs, best)
	return nil
}

func printRuns(w io.Writer, title, variant string, runs []storage.Run, best int) {
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'brickbreaker play %s' to set the first high score!\n", variant)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Bricks", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "------", "----")
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-6s  %s\n", i+1, r.Score, r.Bricks, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
}
