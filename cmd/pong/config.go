package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration pong would run with, as YAML.

Search order:
  1. --config <path>
  2. ~/.pong/configs/pong.yaml
  3. ./configs/pong.yaml
  4. built-in defaults

Examples:
  pong config
  pong config --defaults > ~/.pong/configs/pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := config.LoadPong(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	os.Stdout.Write(data)
}
