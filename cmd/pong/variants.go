package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List all rule variants",
	Long: `Shows the registered rule variants.

  pong        - Classic rules: a ball crossing a goal line scores for the
                side that owns it, the paddle scan stops behind a paddle
                and a near-horizontal right serve is redrawn from the left
                serve range.
  pong-tuned  - The crossing side's opponent scores, every paddle is
                always checked and serves are redrawn from their own range.`,
	Run: runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pong play <id>' to play a variant.")
}
