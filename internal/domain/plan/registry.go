package plan

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mfeldt/etude-mcp/internal/repository"
)

// storageKeyPrefix namespaces snapshot rows so unrelated state can share the
// table later without colliding.
const storageKeyPrefix = "etude.plan.v1:"

// StorageKey returns the snapshot key for a profile.
func StorageKey(profile string) string {
	return storageKeyPrefix + profile
}

// Registry hands out one Store per profile, loading the persisted snapshot
// on first use. Missing or unreadable persisted state degrades to an empty
// plan; it is never fatal.
type Registry struct {
	snapshots repository.SnapshotRepository
	logger    *slog.Logger

	mu      sync.Mutex
	entries map[string]*registryEntry
}

// registryEntry defers the snapshot load to a per-profile once, so the
// registry mutex is never held across I/O.
type registryEntry struct {
	once  sync.Once
	store *Store
}

// NewRegistry creates a Registry backed by the given snapshot repository.
func NewRegistry(snapshots repository.SnapshotRepository, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		snapshots: snapshots,
		logger:    logger,
		entries:   make(map[string]*registryEntry),
	}
}

// Open returns the profile's Store, creating it from persisted state on
// first use. A slow load for one profile does not block other profiles.
func (r *Registry) Open(ctx context.Context, profile string) *Store {
	r.mu.Lock()
	e, ok := r.entries[profile]
	if !ok {
		e = &registryEntry{}
		r.entries[profile] = e
	}
	r.mu.Unlock()

	e.once.Do(func() {
		initial, err := r.snapshots.Load(ctx, StorageKey(profile))
		switch {
		case err == nil:
		case errors.Is(err, repository.ErrNotFound):
			initial = nil
		default:
			r.logger.Warn("could not load saved plan, starting empty", "profile", profile, "error", err)
			initial = nil
		}
		e.store = NewStore(StorageKey(profile), initial, r.snapshots, r.logger)
	})
	return e.store
}

// Close drains and stops every open Store.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for profile, e := range r.entries {
		// Waits out an in-flight load so e.store is settled.
		e.once.Do(func() {})
		if e.store == nil {
			continue
		}
		if err := e.store.Close(); err != nil {
			r.logger.Warn("closing plan store", "profile", profile, "error", err)
		}
	}
	r.entries = make(map[string]*registryEntry)
	return nil
}
