// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newCardsCmd(cat *deck.Catalog, tracker *deck.Tracker) *cobra.Command {
	var (
		search       string
		suits        []string
		keywords     []string
		revealedOnly bool
		listKeywords bool
		out          output.Options
	)

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Browse and filter the deck",
		Long: `List the deck, optionally filtered.

Facets combine with AND; multiple keywords match with OR.

Examples:
  couronne cards                          # Full deck
  couronne cards --search truth           # Text match on name, punchline, keywords
  couronne cards --suit hearts --suit clubs
  couronne cards --keyword love --keyword energy
  couronne cards --revealed               # Only cards you have seen
  couronne cards --keywords               # The keyword vocabulary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			if listKeywords {
				kws := deck.Keywords(cat.Cards)
				if out.Is(output.FormatJSON) {
					return output.JSON(kws)
				}
				fmt.Println(strings.Join(kws, "\n"))
				return nil
			}

			criteria := deck.Criteria{
				Search:   search,
				Keywords: keywords,
			}
			for _, s := range suits {
				criteria.Suits = append(criteria.Suits, deck.Suit(strings.ToLower(s)))
			}

			cards := deck.Filter(cat.Cards, criteria)
			if revealedOnly {
				kept := cards[:0]
				for _, c := range cards {
					if tracker.Revealed(c.ID) {
						kept = append(kept, c)
					}
				}
				cards = kept
			}

			if out.Is(output.FormatJSON) {
				return output.JSON(cards)
			}

			if len(cards) == 0 {
				fmt.Println("No cards match.")
				return nil
			}

			table := output.NewTable("ID", "Suit", "Rank", "Name", "Seen", "Keywords")
			for _, c := range cards {
				seen := ""
				if tracker.Revealed(c.ID) {
					seen = "✓"
				}
				table.AddRow(c.ID, string(c.Suit), c.Rank, c.Name, seen, output.Truncate(strings.Join(c.Keywords, ", "), 30))
			}
			table.Render()

			fmt.Printf("\n%d card(s), %d revealed\n", len(cards), tracker.RevealedCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive text match")
	cmd.Flags().StringArrayVar(&suits, "suit", nil, "Filter by suit (repeatable)")
	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "Filter by keyword (repeatable, OR)")
	cmd.Flags().BoolVar(&revealedOnly, "revealed", false, "Only revealed cards")
	cmd.Flags().BoolVar(&listKeywords, "keywords", false, "List the distinct keywords instead of cards")
	out.AddFlags(cmd, output.FormatTable)

	return cmd
}
