package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in configuration",
	Long: `Print the built-in game configuration as YAML. Save it to
~/.brickbreaker/config.yaml or pass it with --config to change the game.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
