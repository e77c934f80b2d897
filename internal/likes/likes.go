// Package likes keeps per-id like counters persisted as one JSON object.
package likes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"github.com/starford/folio/internal/apperr"
	"github.com/starford/folio/internal/kv"
)

// Key is the store key holding the id → count object.
const Key = "blogLikes"

// Counter is a mutex-guarded like mapping. It reads the store once and
// rewrites the whole mapping on every increment.
type Counter struct {
	mu     sync.Mutex
	store  kv.Store
	counts map[string]int
}

// Load reads the persisted mapping. A missing or malformed value starts from
// an empty mapping.
func Load(ctx context.Context, store kv.Store, logger *slog.Logger) (*Counter, error) {
	raw, ok, err := store.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("likes: load: %w", err)
	}
	counts := map[string]int{}
	if ok {
		if err := json.Unmarshal(raw, &counts); err != nil {
			logger.Warn("likes: stored mapping unreadable, starting empty", slog.String("error", err.Error()))
			counts = map[string]int{}
		}
	}
	return &Counter{store: store, counts: counts}, nil
}

// Count returns the likes for id, 0 when never liked.
func (c *Counter) Count(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[id]
}

// Snapshot returns a copy of the whole mapping.
func (c *Counter) Snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.counts)
}

// Like increments id by one and persists the mapping. The in-memory count
// is kept even when persisting fails; the error is returned.
func (c *Counter) Like(ctx context.Context, id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, fmt.Errorf("likes: empty id: %w", apperr.ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts[id]++
	n := c.counts[id]

	raw, err := json.Marshal(c.counts)
	if err != nil {
		return n, fmt.Errorf("likes: encode: %w", err)
	}
	if err := c.store.Put(ctx, Key, raw); err != nil {
		return n, fmt.Errorf("likes: persist: %w", err)
	}
	return n, nil
}
