package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invader/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a round would be played with, after the
config search order and the difficulty preset are applied.

Search order:
  --config path, ~/.invader/configs/invader.yaml, ./configs/invader.yaml,
  then the built-in defaults.

Examples:
  invader config
  invader config --difficulty hard
  invader config --defaults > ~/.invader/configs/invader.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := config.LoadWithPreset(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(out)
}
