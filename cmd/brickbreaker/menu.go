package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate and Enter to select. After picking a
variant, choose a difficulty. Esc in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	preset := config.ParsePreset(flagDifficulty)
	for {
		res, err := tui.RunMenu(s.store, s.cfg)
		if err != nil {
			return err
		}
		s.cfg = res.Config
		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			back, err := tui.RunScoreboard(s.store, s.cfg.ScreenW, s.cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
			continue
		}

		chosen, quit, err := tui.RunDifficultySelector(res.Title, preset, s.cfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if chosen == "" {
			continue
		}
		preset = chosen
		breakout.SetDifficultyPreset(string(preset))

		back, err := s.play(res.GameID)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
