package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the scoreboard",
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		cfg := terminalConfig()
		_, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	},
}
