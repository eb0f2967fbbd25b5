package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/registry"
)

const defaultVariant = "scored"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, "scored" when none is given.

Controls:
  Mouse        - Move the paddle, click "Try Again" after the game
  Left/Right   - Nudge the paddle (also a/d, h/l)
  P            - Pause
  R/Enter      - Try again after game over
  Esc          - Back
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options:
  easy   - Wider paddle, slower ball, two extra lives
  normal - Ball speeds up as bricks fall
  hard   - Narrow paddle, fast ball, one life less
  fixed  - No speed progression

Examples:
  brickbreaker play
  brickbreaker play classic
  brickbreaker play scored --difficulty hard
  brickbreaker play scored --config ./my-field.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := defaultVariant
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		fmt.Fprintln(os.Stderr, "Run 'brickbreaker list' to see available variants.")
		return fmt.Errorf("unknown variant %q", variant)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.play(variant)
	return err
}
