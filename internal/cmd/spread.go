// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newSpreadCmd(cat *deck.Catalog, tracker *deck.Tracker) *cobra.Command {
	var (
		suits      []string
		unrevealed bool
		out        output.Options
	)

	cmd := &cobra.Command{
		Use:   "spread",
		Short: "Draw a random three-card spread",
		Long: `Draw three random cards and reveal them.

Examples:
  couronne spread
  couronne spread --suit hearts          # Draw from one suit
  couronne spread --unrevealed           # Only cards you have not seen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			criteria := deck.Criteria{}
			for _, s := range suits {
				criteria.Suits = append(criteria.Suits, deck.Suit(strings.ToLower(s)))
			}
			pool := deck.Filter(cat.Cards, criteria)
			if unrevealed {
				kept := pool[:0]
				for _, c := range pool {
					if !tracker.Revealed(c.ID) {
						kept = append(kept, c)
					}
				}
				pool = kept
			}
			if len(pool) < 3 {
				return fmt.Errorf("need at least 3 cards to draw from, have %d", len(pool))
			}

			rand.Shuffle(len(pool), func(i, j int) {
				pool[i], pool[j] = pool[j], pool[i]
			})
			drawn := pool[:3]

			var milestones []int
			for _, c := range drawn {
				if m, hit := tracker.Reveal(cmd.Context(), c.ID); hit {
					milestones = append(milestones, m)
				}
			}

			if out.Is(output.FormatJSON) {
				return output.JSON(map[string]any{
					"cards":      drawn,
					"milestones": milestones,
				})
			}

			positions := []string{"Past", "Present", "Becoming"}
			for i, c := range drawn {
				fmt.Println(output.Header.Render(positions[i]) + " — " + output.Title.Render(c.Name))
				fmt.Println("  " + c.Punchline)
				fmt.Println(output.Muted.Render("  " + c.MirrorQuestion))
				fmt.Println()
			}
			for _, m := range milestones {
				fmt.Println(output.Gold.Render(fmt.Sprintf("✦ Milestone reached: %d cards revealed!", m)))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&suits, "suit", nil, "Draw only from these suits (repeatable)")
	cmd.Flags().BoolVar(&unrevealed, "unrevealed", false, "Draw only unrevealed cards")
	out.AddFlags(cmd, output.FormatTable)
	return cmd
}
