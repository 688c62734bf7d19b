// pong is a two-player hotseat pong for the terminal.
//
// Usage:
//
//	pong play [variant]      - Play a match (default variant: pong)
//	pong menu                - Pick a variant interactively
//	pong variants            - List rule variants
//	pong serve               - Start SSH server for remote hotseat sessions
//	pong replays             - List recorded matches
//	pong replay <id>         - Re-simulate a recorded match
//	pong browse              - Browse and watch recorded matches
//	pong config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible matches
//	--db <path>         - Set replay database path (default: ~/.pong/replays.db)
//	--config <path>     - Use a custom config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/storage"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one keyboard, one terminal",
	Long: `Pong is a two-player hotseat game played in the terminal.
The left player uses W/S, the right player the arrow keys.
First to 10 points wins.

Available commands:
  play      - Play a match directly
  menu      - Interactive variant picker
  variants  - Show all rule variants
  serve     - Start SSH server for remote play
  replays   - List recorded matches
  replay    - Re-simulate or watch a recorded match
  browse    - Browse recorded matches
  config    - Print the effective configuration

Examples:
  pong play
  pong play pong-tuned --seed 42
  pong serve --ssh :2222
  pong replay 3f2a --watch`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the game configuration or exits.
func loadConfig() config.PongConfig {
	cfg, _, err := config.LoadPong(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// newLogger builds the logger for a command. Interactive commands own the
// terminal, so without --log-file they log nowhere; fallback is used
// otherwise. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), closer
}

// runtimeConfig builds the runtime config from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the replay journal, or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	return store
}
