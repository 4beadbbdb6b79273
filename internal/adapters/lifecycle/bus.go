// Package lifecycle routes build lifecycle events to the sessions that registered for them.
package lifecycle

import (
	"context"
	"errors"
	"slices"
	"sync"

	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/core/ports"
)

var _ ports.HookRegistrar = (*Bus)(nil)

// Bus keeps the hooks of every session and fans lifecycle events out to them in key order.
type Bus struct {
	mu    sync.RWMutex
	hooks map[string]ports.SessionHooks
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{hooks: make(map[string]ports.SessionHooks)}
}

// Register attaches hooks under key, replacing hooks registered earlier under the same key.
func (b *Bus) Register(key string, hooks ports.SessionHooks) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks[key] = hooks
}

// Keys returns the registered session keys in sorted order.
func (b *Bus) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.hooks))
	for key := range b.hooks {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// WatchRun delivers changes to every session. All sessions see the batch even when one fails.
func (b *Bus) WatchRun(ctx context.Context, changes []domain.FileChange) error {
	var errs error
	for _, hooks := range b.snapshot() {
		if err := hooks.WatchRun(ctx, changes); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// AfterCompile runs the after-compile hook of every session.
func (b *Bus) AfterCompile(ctx context.Context) error {
	var errs error
	for _, hooks := range b.snapshot() {
		if err := hooks.AfterCompile(ctx); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

func (b *Bus) snapshot() []ports.SessionHooks {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.hooks))
	for key := range b.hooks {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	hooks := make([]ports.SessionHooks, len(keys))
	for i, key := range keys {
		hooks[i] = b.hooks[key]
	}
	return hooks
}
