// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newRevealCmd(cat *deck.Catalog, tracker *deck.Tracker) *cobra.Command {
	var out output.Options

	cmd := &cobra.Command{
		Use:   "reveal <card-id>",
		Short: "Reveal a card from the deck",
		Long: `Reveal a card: show its punchline and mirror question, and record it as seen.

Revealing the same card twice is harmless; your reveal count only grows.

Examples:
  couronne reveal hearts-queen
  couronne reveal spades-ace -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			card, ok := cat.Card(args[0])
			if !ok {
				return fmt.Errorf("card not found: %s", args[0])
			}

			already := tracker.Revealed(card.ID)
			milestone, hit := tracker.Reveal(cmd.Context(), card.ID)

			if out.Is(output.FormatJSON) {
				return output.JSON(map[string]any{
					"card":             card,
					"already_revealed": already,
					"milestone":        milestone,
					"revealed":         tracker.RevealedCount(),
				})
			}

			fmt.Println(output.Title.Render(card.Name) + output.Muted.Render(fmt.Sprintf("  (%s %s)", card.Suit, card.Rank)))
			fmt.Println(card.Punchline)
			fmt.Println()
			fmt.Println(output.Muted.Render("Mirror question: ") + card.MirrorQuestion)

			if already {
				fmt.Println(output.Muted.Render("\nAlready in your revealed set."))
			} else {
				fmt.Printf("\n%d card(s) revealed.\n", tracker.RevealedCount())
			}
			if hit {
				fmt.Println(output.Gold.Render(fmt.Sprintf("✦ Milestone reached: %d cards revealed!", milestone)))
			}
			fmt.Println(output.Muted.Render("\nAdd it to your journal with: couronne journal add " + card.ID))
			return nil
		},
	}

	out.AddFlags(cmd, output.FormatTable)
	return cmd
}
