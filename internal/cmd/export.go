// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newExportCmd(tracker *deck.Tracker) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export your journal",
		Long: `Write the journal to a file (or stdout) as Markdown or JSON.

Examples:
  couronne export                          # Markdown to stdout
  couronne export --format json
  couronne export --out journal.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := tracker.Entries()
			if len(entries) == 0 {
				fmt.Println("Your journal is empty; nothing to export.")
				return nil
			}

			var data []byte
			switch format {
			case "markdown", "md":
				data = []byte(journalMarkdown(entries))
			case "json":
				var err error
				data, err = json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal journal: %w", err)
				}
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown export format %q (markdown or json)", format)
			}

			if outPath == "" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Println(output.Good.Render("Exported ") + fmt.Sprintf("%d entr%s to %s", len(entries), plural(len(entries), "y", "ies"), outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Export format: markdown or json")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default stdout)")
	return cmd
}

func journalMarkdown(entries []deck.JournalEntry) string {
	var b strings.Builder
	b.WriteString("# Journal\n")
	for _, e := range entries {
		when := time.UnixMilli(e.Timestamp).Format("2006-01-02")
		fmt.Fprintf(&b, "\n## %s — %s\n\n> %s\n", e.CardName, when, e.Question)
	}
	return b.String()
}
