// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newResetCmd(tracker *deck.Tracker) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress",
		Long:  "Clear revealed cards and the journal. This cannot be undone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Erase %d revealed card(s) and %d journal entr%s? [y/N] ",
					tracker.RevealedCount(), len(tracker.Entries()), plural(len(tracker.Entries()), "y", "ies"))
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if !scanner.Scan() {
					return scanner.Err()
				}
				answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
				if answer != "y" && answer != "yes" {
					fmt.Println("Nothing erased.")
					return nil
				}
			}

			tracker.Reset(cmd.Context())
			fmt.Println(output.Good.Render("Progress erased. The deck is new again."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
