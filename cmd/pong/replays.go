package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagReplayLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded matches",
	Long: `Lists the most recent recorded matches, newest first.

A recording holds the variant, seed, tick rate and the per-tick paddle keys;
scores are re-derived by replaying it.

Examples:
  pong replays
  pong replays --limit 50
  pong replays rm 3f2a`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replaysRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded match",
	Args:  cobra.ExactArgs(1),
	Run:   runReplaysRm,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of replays to list")
	replaysCmd.AddCommand(replaysRmCmd)
}

func runReplays(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	replays, err := store.ListReplays(flagReplayLimit)
	if err != nil {
		fail("%v", err)
	}

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		return
	}

	fmt.Println("Recorded matches (newest first):")
	fmt.Println()
	fmt.Printf("  %-36s  %-10s  %-20s  %-7s  %s\n", "ID", "Variant", "Seed", "Ticks", "Recorded")
	fmt.Printf("  %-36s  %-10s  %-20s  %-7s  %s\n", "--", "-------", "----", "-----", "--------")
	for _, r := range replays {
		fmt.Printf("  %-36s  %-10s  %-20d  %-7d  %s\n",
			r.ID, r.Variant, r.Seed, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runReplaysRm(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeleteReplay(args[0]); err != nil {
		if errors.Is(err, storage.ErrReplayNotFound) {
			fail("no replay matches %q", args[0])
		}
		fail("%v", err)
	}
	fmt.Println("Deleted.")
}
