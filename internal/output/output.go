// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output handles CLI rendering: a --json switch shared by every
// command, lipgloss styles, and a small table writer.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Format names an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var (
	cAccent = lipgloss.Color("135") // violet
	cGood   = lipgloss.Color("42")  // green
	cWarn   = lipgloss.Color("214") // orange
	cMuted  = lipgloss.Color("244") // gray
	cGold   = lipgloss.Color("220") // gold
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Header = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Good   = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn   = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Gold   = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Muted  = lipgloss.NewStyle().Foreground(cMuted)
)

// Options carries the per-command output format flag.
type Options struct {
	format string
	def    Format
}

// AddFlags registers the --output flag on cmd with the given default.
func (o *Options) AddFlags(cmd *cobra.Command, def Format) {
	o.def = def
	cmd.Flags().StringVarP(&o.format, "output", "o", string(def), "Output format: table or json")
}

// Resolve validates the selected format.
func (o *Options) Resolve() error {
	if o.format == "" {
		o.format = string(o.def)
	}
	switch Format(o.format) {
	case FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", o.format)
	}
}

// Is reports whether the selected format matches f.
func (o *Options) Is(f Format) bool {
	return Format(o.format) == f
}

// JSON writes v as indented JSON to stdout.
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table is a column-aligned text table with a styled header row.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Missing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render writes the table to stdout.
func (t *Table) Render() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	styled := make([]string, len(t.headers))
	for i, h := range t.headers {
		styled[i] = Header.Render(h)
	}
	fmt.Fprintln(w, strings.Join(styled, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// Truncate shortens s to max runes with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 3 {
		max = 3
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
