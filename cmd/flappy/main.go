// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy                  - Play (same as "flappy play")
//	flappy play             - Play a session
//	flappy scores           - Show the round history
//
// Global flags:
//
//	--fps <rate>                  - Set tick rate (default: 60)
//	--seed <value>                - Set RNG seed for reproducible gameplay
//	--config <path>               - Custom game config YAML
//	--highscore-backend <name>    - High score storage: file or sqlite
//	--highscore-file <path>       - High score JSON file (file backend)
//	--db <path>                   - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>             - Log destination (default: ~/.arcade/flappy.log)
//	--debug                       - Start with the collision overlay and debug logging on
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS              int
	flagSeed             int64
	flagConfig           string
	flagHighScoreBackend string
	flagHighScoreFile    string
	flagDBPath           string
	flagLogFile          string
	flagDebug            bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Fly a bird through an endless stream of pipes. Each pipe that leaves
the screen scores a point; touching a pipe or the screen edge ends the round.

Controls:
  Space        - Start / flap / restart
  D            - Toggle the collision overlay
  Q/Esc/Ctrl+C - Quit
  Ctrl+S       - Save a text screenshot

Examples:
  flappy
  flappy --seed 42
  flappy --highscore-backend sqlite
  flappy scores --tui`,
	PersistentPreRunE: validateFlags,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreBackend, "highscore-backend", backendFile, "High score storage: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreFile, "highscore-file", "", "High score JSON file (default from config: highscore.json)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/flappy.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay on and log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

func validateFlags(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	switch flagHighScoreBackend {
	case backendFile, backendSQLite:
	default:
		return fmt.Errorf("invalid --highscore-backend %q: want %q or %q", flagHighScoreBackend, backendFile, backendSQLite)
	}
	return nil
}
