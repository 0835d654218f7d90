// Package progress loads and saves the mastery state of the catalog.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abbr-trainer/backend/internal/domain/catalog"
	"github.com/abbr-trainer/backend/internal/domain/item"
	"github.com/abbr-trainer/backend/internal/store"
)

// DefaultKey is the KV key holding the serialized item list.
const DefaultKey = "menuProgressV1"

// Store persists the item list as one JSON array under a single key.
type Store struct {
	kv      store.KV
	key     string
	entries []catalog.Entry
	logger  *slog.Logger
}

// New creates a Store for the given catalog entries. An empty key falls
// back to DefaultKey.
func New(kv store.KV, key string, entries []catalog.Entry, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		kv:      kv,
		key:     key,
		entries: entries,
		logger:  logger,
	}
}

// Base returns the catalog-derived list with every score at zero.
func (s *Store) Base() []item.Item {
	return catalog.Derive(s.entries)
}

// Load returns the current catalog with saved scores merged in.
// Missing, unreadable or malformed saved state never fails: the
// unscored base list is returned instead.
func (s *Store) Load(ctx context.Context) []item.Item {
	base := s.Base()

	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, store.ErrNotFound) {
		return base
	}
	if err != nil {
		s.logger.Warn("progress read failed, starting fresh", "key", s.key, "error", err)
		return base
	}

	var saved []item.Item
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.logger.Warn("progress is not valid JSON, starting fresh", "key", s.key, "error", err)
		return base
	}

	return Merge(base, saved)
}

// Save overwrites the stored progress with items.
func (s *Store) Save(ctx context.Context, items []item.Item) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Merge carries saved scores onto base, matching purely by Item.Key.
// Base IDs are kept so IDs stay unique under the current catalog order;
// saved entries with no counterpart in base are dropped.
func Merge(base, saved []item.Item) []item.Item {
	byKey := make(map[string]item.Item, len(saved))
	for _, it := range saved {
		byKey[it.Key()] = it
	}

	merged := make([]item.Item, len(base))
	for i, b := range base {
		if it, ok := byKey[b.Key()]; ok {
			b.Score = item.ClampScore(it.Score)
		}
		merged[i] = b
	}
	return merged
}

// Encode serializes items in the persisted wire shape.
func Encode(items []item.Item) (string, error) {
	if items == nil {
		items = []item.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode progress: %w", err)
	}
	return string(data), nil
}
