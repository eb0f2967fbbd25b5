// brickbreaker is a Breakout-style game played in the terminal.
//
// Usage:
//
//	brickbreaker play [variant]    - Play a variant (default: scored)
//	brickbreaker menu              - Pick a variant and difficulty interactively
//	brickbreaker list              - List variants
//	brickbreaker scores [variant]  - Print the best runs
//	brickbreaker board             - Browse the scoreboard
//	brickbreaker defaults          - Print the built-in configuration
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--db <path>           - Scores database (default: ~/.brickbreaker/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--sound               - Play sound cues
//	--log-file <path>     - Log file (default: ~/.brickbreaker/brickbreaker.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

var (
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a Breakout-style game for the terminal. Steer the
paddle with the mouse or the arrow keys and keep the ball in play.

Available commands:
  play      - Play a variant directly
  menu      - Interactive variant and difficulty picker
  list      - Show all variants
  scores    - Print the best runs
  board     - Browse the scoreboard
  defaults  - Print the built-in configuration

Settings can also come from BRICKBREAKER_DB, BRICKBREAKER_CONFIG,
BRICKBREAKER_DIFFICULTY, BRICKBREAKER_SOUND, BRICKBREAKER_LOG_FILE and
BRICKBREAKER_LOG_LEVEL. Flags win over the environment.

Examples:
  brickbreaker play
  brickbreaker play classic --difficulty easy
  brickbreaker menu --sound
  brickbreaker scores scored`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.brickbreaker/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagSound, "sound", false, "Play sound cues")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.brickbreaker/brickbreaker.log)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(defaultsCmd)
}
