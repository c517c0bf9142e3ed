// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package deck

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// progressKey is the single KV key holding the user's ProgressState.
const progressKey = "couronne:progress"

// Tracker is the source of truth for "has the user seen card X" and for the
// journal. Mutations are optimistic: the in-memory state changes first, then
// persistence is attempted best-effort. There is no rollback on a failed
// save.
type Tracker struct {
	states     *StateStore
	milestones Milestones
	log        *zap.Logger

	revealed map[string]bool
	order    []string // reveal order, what gets serialized
	journal  []JournalEntry
}

// NewTracker rehydrates progress from the state store. Absent or corrupt
// state yields an empty tracker.
func NewTracker(ctx context.Context, states *StateStore, milestones Milestones, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tracker{
		states:     states,
		milestones: milestones,
		log:        log,
		revealed:   make(map[string]bool),
	}

	var state ProgressState
	if states.Load(ctx, progressKey, &state) {
		for _, id := range state.RevealedIDs {
			if !t.revealed[id] {
				t.revealed[id] = true
				t.order = append(t.order, id)
			}
		}
		t.journal = state.JournalEntries
	}
	return t
}

// Reveal marks a card as seen. Revealing is monotonic and idempotent: a card
// already in the set leaves the state untouched and reaches no milestone.
// Otherwise the new reveal count is checked against the milestone thresholds.
func (t *Tracker) Reveal(ctx context.Context, cardID string) (int, bool) {
	if t.revealed[cardID] {
		return 0, false
	}
	t.revealed[cardID] = true
	t.order = append(t.order, cardID)
	t.persist(ctx)

	return t.milestones.Check(len(t.order))
}

// Revealed reports whether the card has been seen.
func (t *Tracker) Revealed(cardID string) bool {
	return t.revealed[cardID]
}

// RevealedCount returns the size of the revealed set.
func (t *Tracker) RevealedCount() int {
	return len(t.order)
}

// AddEntry appends a journal entry for the card, copying its name and mirror
// question so the entry survives catalog edits. The created entry is
// returned for confirmation output.
func (t *Tracker) AddEntry(ctx context.Context, card Card) JournalEntry {
	entry := JournalEntry{
		ID:        uuid.NewString(),
		CardID:    card.ID,
		CardName:  card.Name,
		Question:  card.MirrorQuestion,
		Timestamp: time.Now().UnixMilli(),
	}
	t.journal = append(t.journal, entry)
	t.persist(ctx)
	return entry
}

// RemoveEntry deletes a journal entry by id. Removing an unknown id is a
// no-op, not an error.
func (t *Tracker) RemoveEntry(ctx context.Context, entryID string) bool {
	for i, e := range t.journal {
		if e.ID == entryID {
			t.journal = append(t.journal[:i], t.journal[i+1:]...)
			t.persist(ctx)
			return true
		}
	}
	return false
}

// Entries returns the journal newest-first. Storage order is oldest-first.
func (t *Tracker) Entries() []JournalEntry {
	out := make([]JournalEntry, len(t.journal))
	for i, e := range t.journal {
		out[len(t.journal)-1-i] = e
	}
	return out
}

// Reset clears all progress, the escape hatch for starting over.
func (t *Tracker) Reset(ctx context.Context) {
	t.revealed = make(map[string]bool)
	t.order = nil
	t.journal = nil
	t.persist(ctx)
}

// Stats summarizes progress against a catalog of total cards.
func (t *Tracker) Stats(total int) ProgressStats {
	stats := ProgressStats{
		Revealed:       len(t.order),
		Total:          total,
		JournalEntries: len(t.journal),
	}
	if total > 0 {
		stats.Percentage = float64(len(t.order)) / float64(total) * 100
	}
	if next, ok := t.milestones.Next(len(t.order)); ok {
		stats.NextMilestone = next
	}
	return stats
}

func (t *Tracker) persist(ctx context.Context) {
	state := ProgressState{
		RevealedIDs:    t.order,
		JournalEntries: t.journal,
	}
	if state.RevealedIDs == nil {
		state.RevealedIDs = []string{}
	}
	if state.JournalEntries == nil {
		state.JournalEntries = []JournalEntry{}
	}
	t.states.Save(ctx, progressKey, state)
}
