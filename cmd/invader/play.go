package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invader/internal/config"
	"github.com/vovakirdan/tui-invader/internal/core"
	"github.com/vovakirdan/tui-invader/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a round in the current terminal.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  P            - Pause
  R            - Restart (after game over)
  ?            - Show all controls
  Q/F1/Ctrl+C  - Quit

Difficulty options:
  easy   - Slower invader, longer respawn delay
  normal - Timings as configured
  hard   - Faster invader, shorter respawn delay
  fixed  - Timings exactly as in the config file

Examples:
  invader play
  invader play --difficulty easy
  invader play --seed 42 --log-file invader.log --log-level debug
  invader play --config ./my-invader.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Bubble Tea sends the real size on start; this only seeds the first frame.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(gameCfg, rc, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
