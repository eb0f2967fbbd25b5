package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

// applyEnv fills every flag the user did not set from the environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	return mergeEnv(e, func(name string) bool { return cmd.Flags().Changed(name) })
}

func mergeEnv(e config.Env, changed func(string) bool) error {
	set := func(name string, dst *string, val string) {
		if val != "" && !changed(name) {
			*dst = val
		}
	}
	set("db", &flagDBPath, e.DB)
	set("config", &flagConfig, e.Config)
	set("difficulty", &flagDifficulty, e.Difficulty)
	set("log-file", &flagLogFile, e.LogFile)
	set("log-level", &flagLogLevel, e.LogLevel)
	if e.Sound && !changed("sound") {
		flagSound = true
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}
