package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and watch recorded matches",
	Long: `Opens a table of recorded matches.

Controls:
  Up/Down  - Select
  Enter    - Watch
  D        - Delete
  Esc/Q    - Leave`,
	Run: runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard, "pong")
	defer closeLog()

	store := openStore()
	defer store.Close()

	cfg := runtimeConfig()
	browseLoop(store, tui.Options{Config: loadConfig(), Store: store, Logger: logger}, cfg.ScreenW, cfg.ScreenH)
}

// browseLoop alternates between the browser and the viewer until the user
// leaves. It reports whether the user asked to quit entirely.
func browseLoop(store *storage.Store, opts tui.Options, width, height int) bool {
	for {
		res, err := tui.RunBrowser(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return true
		}
		if res.Watch == "" {
			return !res.Back
		}

		replay, err := store.Replay(res.Watch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		game, err := tui.ReplayGame(replay, opts.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		opts.Logger.Info("watching replay", "id", replay.ID)
		if err := tui.RunReplay(game, replay, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
