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

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a match, Tab to browse
recorded matches. After a match you return to the menu.

Examples:
  pong menu
  pong menu --fps 30
  pong menu --db ./replays.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	pongCfg := loadConfig()
	logger, closeLog := newLogger(io.Discard, "pong")
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("replay database unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()
	opts := tui.Options{Config: pongCfg, Store: store, Logger: logger}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsReplays {
			if store == nil {
				continue
			}
			if quit := browseLoop(store, opts, cfg.ScreenW, cfg.ScreenH); quit {
				break
			}
			continue
		}

		game, err := registry.Create(menuResult.VariantID, pongCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, opts, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
