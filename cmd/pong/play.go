package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a match",
	Long: `Start a hotseat match of the given rule variant (default: pong).

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle
  P          - Pause
  R          - Restart (after the match ends)
  Esc/B      - Leave (while paused or after the match ends)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot

Matches are recorded to the replay database unless --record=false.

Examples:
  pong play
  pong play pong-tuned
  pong play --seed 42 --fps 30
  pong play --config ./my-pong.yaml --log-file pong.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", true, "Record the match to the replay database")
}

func runPlay(_ *cobra.Command, args []string) {
	variantID := "pong"
	if len(args) > 0 {
		variantID = args[0]
	}

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'pong variants' to see available variants.")
		os.Exit(1)
	}

	cfg := loadConfig()
	logger, closeLog := newLogger(io.Discard, "pong")
	defer closeLog()

	var store *storage.Store
	if flagRecord {
		var err error
		if store, err = storage.Open(flagDBPath); err != nil {
			logger.Warn("recording disabled", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	game, err := registry.Create(variantID, cfg)
	if err != nil {
		fail("%v", err)
	}

	opts := tui.Options{Config: cfg, Store: store, Logger: logger}
	if err := tui.Run(game, opts, runtimeConfig()); err != nil {
		fail("%v", err)
	}
}
