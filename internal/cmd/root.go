// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/config"
	"github.com/mvictoire/couronne/internal/deck"
)

// NewRootCmd creates the root command for couronne.
func NewRootCmd(cfg *config.Config, cat *deck.Catalog, tracker *deck.Tracker) *cobra.Command {

	root := &cobra.Command{
		Use:   "couronne",
		Short: "A reflection card deck companion",
		Long: `Reveal cards, keep a journal, and discover your archetype.

couronne provides tools to:
- Reveal cards from the deck and track your progress
- Browse and filter the deck by suit, keyword, or text
- Keep a journal of mirror questions that struck you
- Take the archetype quiz
- Draw a three-card spread`,
		SilenceUsage: true,
	}

	root.AddCommand(newRevealCmd(cat, tracker))
	root.AddCommand(newCardsCmd(cat, tracker))
	root.AddCommand(newJournalCmd(cat, tracker))
	root.AddCommand(newQuizCmd(cat))
	root.AddCommand(newSpreadCmd(cat, tracker))
	root.AddCommand(newStatsCmd(cat, tracker))
	root.AddCommand(newExportCmd(tracker))
	root.AddCommand(newWatchCmd(cfg))
	root.AddCommand(newResetCmd(tracker))

	return root
}
