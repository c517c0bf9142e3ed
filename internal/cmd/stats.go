// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newStatsCmd(cat *deck.Catalog, tracker *deck.Tracker) *cobra.Command {
	var out output.Options

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show your progress",
		Long:  "Display progress through the deck: reveal count, next milestone, journal size, and per-suit breakdown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			stats := tracker.Stats(len(cat.Cards))

			// Per-suit revealed counts.
			suitTotal := make(map[deck.Suit]int)
			suitSeen := make(map[deck.Suit]int)
			for _, c := range cat.Cards {
				suitTotal[c.Suit]++
				if tracker.Revealed(c.ID) {
					suitSeen[c.Suit]++
				}
			}

			if out.Is(output.FormatJSON) {
				bySuit := make(map[string]map[string]int)
				for _, s := range deck.Suits() {
					if suitTotal[s] == 0 {
						continue
					}
					bySuit[string(s)] = map[string]int{"revealed": suitSeen[s], "total": suitTotal[s]}
				}
				return output.JSON(map[string]any{
					"progress": stats,
					"by_suit":  bySuit,
					"keywords": len(deck.Keywords(cat.Cards)),
				})
			}

			fmt.Println(output.Title.Render("Your deck"))
			fmt.Printf("Revealed: %d/%d (%.0f%%)\n", stats.Revealed, stats.Total, stats.Percentage)
			if stats.NextMilestone > 0 {
				fmt.Printf("Next milestone: %d cards\n", stats.NextMilestone)
			} else if stats.Revealed > 0 {
				fmt.Println(output.Gold.Render("Every milestone reached."))
			}
			fmt.Printf("Journal entries: %d\n\n", stats.JournalEntries)

			table := output.NewTable("Suit", "Revealed", "Total")
			for _, s := range deck.Suits() {
				if suitTotal[s] == 0 {
					continue
				}
				table.AddRow(string(s), fmt.Sprintf("%d", suitSeen[s]), fmt.Sprintf("%d", suitTotal[s]))
			}
			table.Render()

			return nil
		},
	}

	out.AddFlags(cmd, output.FormatTable)
	return cmd
}
