// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newJournalCmd(cat *deck.Catalog, tracker *deck.Tracker) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Manage your journal",
		Long:  "Capture a card's mirror question into your journal, list entries, or remove one.",
	}

	cmd.AddCommand(newJournalAddCmd(cat, tracker))
	cmd.AddCommand(newJournalListCmd(tracker))
	cmd.AddCommand(newJournalRemoveCmd(tracker))

	return cmd
}

func newJournalAddCmd(cat *deck.Catalog, tracker *deck.Tracker) *cobra.Command {
	var out output.Options

	cmd := &cobra.Command{
		Use:   "add <card-id>",
		Short: "Add a card's mirror question to the journal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			card, ok := cat.Card(args[0])
			if !ok {
				return fmt.Errorf("card not found: %s", args[0])
			}

			entry := tracker.AddEntry(cmd.Context(), card)

			if out.Is(output.FormatJSON) {
				return output.JSON(entry)
			}

			fmt.Println(output.Good.Render("Added to journal: ") + entry.CardName)
			fmt.Println(output.Muted.Render("  " + entry.Question))
			fmt.Println(output.Muted.Render("  entry id: " + entry.ID))
			return nil
		},
	}

	out.AddFlags(cmd, output.FormatTable)
	return cmd
}

func newJournalListCmd(tracker *deck.Tracker) *cobra.Command {
	var (
		limit int
		out   output.Options
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			entries := tracker.Entries()
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			if out.Is(output.FormatJSON) {
				return output.JSON(entries)
			}

			if len(entries) == 0 {
				fmt.Println("Your journal is empty. Add to it with: couronne journal add <card-id>")
				return nil
			}

			table := output.NewTable("Entry", "Card", "Question", "When")
			for _, e := range entries {
				when := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04")
				table.AddRow(shortID(e.ID), e.CardName, output.Truncate(e.Question, 50), when)
			}
			table.Render()

			fmt.Printf("\nTotal: %d entr%s\n", len(entries), plural(len(entries), "y", "ies"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Limit number of entries shown")
	out.AddFlags(cmd, output.FormatTable)
	return cmd
}

func newJournalRemoveCmd(tracker *deck.Tracker) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <entry-id>",
		Short: "Remove a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := resolveEntryID(tracker, args[0])
			if removed := tracker.RemoveEntry(cmd.Context(), id); !removed {
				fmt.Printf("No entry with id %s; nothing removed.\n", args[0])
				return nil
			}
			fmt.Println(output.Good.Render("Entry removed."))
			return nil
		},
	}
	return cmd
}

// resolveEntryID lets the user pass the truncated id shown by journal list,
// as long as it is an unambiguous prefix.
func resolveEntryID(tracker *deck.Tracker, prefix string) string {
	match := prefix
	count := 0
	for _, e := range tracker.Entries() {
		if e.ID == prefix {
			return prefix
		}
		if len(prefix) >= 4 && len(e.ID) > len(prefix) && e.ID[:len(prefix)] == prefix {
			match = e.ID
			count++
		}
	}
	if count == 1 {
		return match
	}
	return prefix
}

// shortID is the first 8 characters of a uuid, enough to disambiguate a
// personal journal.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
