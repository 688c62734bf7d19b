package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded match",
	Long: `Re-simulates a recorded match from its seed and inputs and prints the
outcome under the config it was recorded with. The final state is checked
against the recorded hash; a mismatch exits with status 1. The id may be any
unique prefix. Replays recorded without a config use the current one.

With --watch the match is played back in the terminal instead
(P pauses, Q leaves).

Examples:
  pong replay 3f2a
  pong replay 3f2a --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the match back in the terminal")
}

func runReplay(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	replay, err := store.Replay(args[0])
	if errors.Is(err, storage.ErrReplayNotFound) {
		fail("no replay matches %q", args[0])
	}
	if err != nil {
		fail("%v", err)
	}

	game, err := tui.ReplayGame(replay, loadConfig())
	if err != nil {
		fail("%v", err)
	}

	if flagWatch {
		cfg := runtimeConfig()
		if err := tui.RunReplay(game, replay, cfg.ScreenW, cfg.ScreenH); err != nil {
			fail("%v", err)
		}
		return
	}

	res := tui.Rerun(game, replay)
	fmt.Printf("Replay   %s\n", replay.ID)
	fmt.Printf("Variant  %s\n", replay.Variant)
	fmt.Printf("Seed     %d\n", replay.Seed)
	fmt.Printf("Ticks    %d (%.1fs at %d ticks/s)\n", res.State.Tick,
		float64(res.State.Tick)/float64(max(1, replay.TickRate)), replay.TickRate)
	fmt.Printf("Score    %d - %d\n", res.State.LeftScore, res.State.RightScore)
	if res.State.GameOver {
		winner := "left"
		if res.State.RightScore > res.State.LeftScore {
			winner = "right"
		}
		fmt.Printf("Winner   %s\n", winner)
	} else {
		fmt.Println("Winner   none (abandoned)")
	}

	if !res.Verified {
		fmt.Fprintf(os.Stderr, "Error: replay diverged (hash %x, recorded %x)\n",
			res.Hash, replay.FinalHash)
		os.Exit(1)
	}
	fmt.Println("Verified ok")
}
