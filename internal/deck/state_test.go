package deck

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/mvictoire/couronne/internal/store"
)

func TestStateStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStateStore(store.NewMemory(), zap.NewNop())

	in := ProgressState{
		RevealedIDs:    []string{"c1", "c2"},
		JournalEntries: []JournalEntry{{ID: "e1", CardID: "c1", CardName: "One", Timestamp: 1700000000000}},
	}
	s.Save(ctx, "k", in)

	var out ProgressState
	if !s.Load(ctx, "k", &out) {
		t.Fatal("Load should find the saved state")
	}
	if len(out.RevealedIDs) != 2 || len(out.JournalEntries) != 1 {
		t.Fatalf("round trip lost data: %+v", out)
	}
	if out.JournalEntries[0].CardName != "One" {
		t.Fatalf("entry = %+v", out.JournalEntries[0])
	}
}

func TestStateStoreLoadAbsent(t *testing.T) {
	s := NewStateStore(store.NewMemory(), zap.NewNop())
	var out ProgressState
	if s.Load(context.Background(), "missing", &out) {
		t.Fatal("Load of an absent key should return false")
	}
}

func TestStateStoreLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	if err := kv.Set(ctx, "k", []byte("not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := NewStateStore(kv, zap.NewNop())
	var out ProgressState
	if s.Load(ctx, "k", &out) {
		t.Fatal("Load of a corrupt value should return false, not error")
	}
}

func TestStateStoreSaveFailureSwallowed(t *testing.T) {
	s := NewStateStore(failingKV{KV: store.NewMemory()}, zap.NewNop())
	// Must not panic or surface the failure.
	s.Save(context.Background(), "k", ProgressState{})
}
