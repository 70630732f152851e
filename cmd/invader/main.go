// invader is a terminal arcade shooter: move the ship, shoot the wandering
// invader, dodge its zig-zag shots.
//
// Usage:
//
//	invader                  - Play in this terminal
//	invader play             - Same as above
//	invader serve            - Start SSH server for remote play
//	invader config           - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file (local play only)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
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
	Use:   "invader",
	Short: "TUI Invader - shoot the wandering invader in your terminal",
	Long: `TUI Invader is a small terminal shooter. Your ship sits near the
bottom of the screen and fires upward; a single invader wanders the upper
playfield and fires zig-zag shots back. Hit it and it flashes and respawns
two seconds later. Get hit and the round is over.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  invader
  invader --difficulty hard
  invader serve --ssh :2222
  invader config --config ./my-invader.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Without a log file the output
// goes to fallback; pass io.Discard to keep the alt screen clean.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "invader",
		Level:           level,
	})
	return logger, closeFn, nil
}
