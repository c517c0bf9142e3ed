// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package deck

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/mvictoire/couronne/internal/store"
)

// StateStore persists JSON state blobs through a store.KV. It never surfaces
// storage failures to callers: a corrupt value reads as absent and a failed
// write leaves the in-memory state authoritative for the session. Both paths
// log a warning.
type StateStore struct {
	kv  store.KV
	log *zap.Logger
}

// NewStateStore wraps kv. A nil logger defaults to a no-op logger.
func NewStateStore(kv store.KV, log *zap.Logger) *StateStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateStore{kv: kv, log: log}
}

// Load reads and decodes the value under key into v. It returns false when
// the key is absent or the stored value does not decode; v is untouched in
// the decode-failure case beyond whatever json.Unmarshal wrote before
// failing, so callers should pass a fresh zero value.
func (s *StateStore) Load(ctx context.Context, key string, v any) bool {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("state load failed, starting empty", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("state corrupt, starting empty", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Save encodes v and writes the full value under key, best-effort. A marshal
// or write failure is logged and swallowed.
func (s *StateStore) Save(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("state marshal failed, skipping save", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.log.Warn("state save failed, continuing in memory", zap.String("key", key), zap.Error(err))
	}
}

// Clear deletes the value under key, best-effort.
func (s *StateStore) Clear(ctx context.Context, key string) {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Warn("state clear failed", zap.String("key", key), zap.Error(err))
	}
}
