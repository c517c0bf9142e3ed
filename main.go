// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mvictoire/couronne/internal/cmd"
	"github.com/mvictoire/couronne/internal/config"
	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "couronne: failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Verbose)
	defer logger.Sync()

	cat, err := deck.LoadCatalog(cfg.DeckPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couronne: failed to load deck: %v\n", err)
		os.Exit(1)
	}

	milestones := deck.Milestones(cfg.Milestones)
	if len(milestones) == 0 {
		milestones = deck.DefaultMilestones()
	}
	if err := milestones.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "couronne: bad config: %v\n", err)
		os.Exit(1)
	}

	// If SQLite fails (permissions, corruption), fall back to an in-memory
	// store so the tool stays usable for the session without persistence.
	var kv store.KV
	kv, err = store.OpenSQLite(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: cannot open database: %v\n", err)
		fmt.Fprintln(os.Stderr, "         continuing without persistence for this session")
		logger.Warn("sqlite unavailable, using memory store", zap.String("path", cfg.DBPath), zap.Error(err))
		kv = store.NewMemory()
	}
	defer kv.Close()

	ctx := context.Background()
	states := deck.NewStateStore(kv, logger)
	tracker := deck.NewTracker(ctx, states, milestones, logger)

	root := cmd.NewRootCmd(cfg, cat, tracker)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	c := zap.NewProductionConfig()
	c.OutputPaths = []string{"stderr"}
	if verbose {
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		c.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := c.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
