// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/config"
	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newWatchCmd(cfg *config.Config) *cobra.Command {
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch [deck.yaml]",
		Short: "Watch a deck file and validate it on every save",
		Long: `Deck authoring helper: re-validate a YAML deck file whenever it changes.

Defaults to the configured deck file when no argument is given.

Examples:
  couronne watch my-deck.yaml
  couronne watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.DeckPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no deck file: pass a path or set deck_path in config")
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot access %s: %w", path, err)
			}

			validate := func() {
				cat, err := deck.LoadCatalog(path)
				stamp := time.Now().Format("15:04:05")
				if err != nil {
					fmt.Printf("%s %s %v\n", output.Muted.Render(stamp), output.Warn.Render("invalid:"), err)
					return
				}
				fmt.Printf("%s %s %d cards, %d questions, %d archetypes\n",
					output.Muted.Render(stamp), output.Good.Render("ok:"),
					len(cat.Cards), len(cat.Questions), len(cat.Archetypes))
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			// Watch the directory: editors replace files on save, which
			// drops a watch placed on the file itself.
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}

			fmt.Printf("Watching %s (ctrl-c to stop)\n", path)
			validate()

			debounce := time.Duration(debounceMs) * time.Millisecond
			var timer *time.Timer
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != filepath.Clean(path) {
						continue
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounce, validate)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Println(output.Warn.Render("watch error: ") + err.Error())
				case <-cmd.Context().Done():
					return nil
				}
			}
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 300, "Debounce window in milliseconds")
	return cmd
}
