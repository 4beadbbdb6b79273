package session

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// BuildFunc constructs the session for a key that has none yet.
type BuildFunc func(ctx context.Context) (*Session, error)

// Registry maps session keys to sessions for the life of the process.
// Sessions are never evicted.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	group    singleflight.Group
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Get returns the session registered under key.
func (r *Registry) Get(key string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[key]
	return s, ok
}

// GetOrCreate returns the session registered under key, building it with build when absent.
// Concurrent callers for the same key share a single build and receive the same session or error.
// A failed build leaves the key unpopulated.
func (r *Registry) GetOrCreate(ctx context.Context, key string, build BuildFunc) (*Session, error) {
	if s, ok := r.Get(key); ok {
		return s, nil
	}

	result, err, _ := r.group.Do(key, func() (any, error) {
		// A build that finished between the fast path and Do has already stored its session.
		if s, ok := r.Get(key); ok {
			return s, nil
		}

		s, err := build(ctx)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrSessionBuildFailed, "failed to create session"), "key", key)
		}

		r.mu.Lock()
		r.sessions[key] = s
		r.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Session), nil
}

// Keys returns the sorted keys of every registered session.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.sessions))
	for key := range r.sessions {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
