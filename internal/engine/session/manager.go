package session

import (
	"context"

	"go.trai.ch/tsload/internal/core/domain"
)

// Manager hands out the session of a loader instance, bootstrapping it on first use.
type Manager struct {
	registry     *Registry
	bootstrapper *Bootstrapper
}

// NewManager creates a Manager over registry.
func NewManager(registry *Registry, bootstrapper *Bootstrapper) *Manager {
	return &Manager{registry: registry, bootstrapper: bootstrapper}
}

// Session returns the session for opts.Instance. Options of later calls for an
// existing instance are ignored; the session keeps the configuration it was built with.
func (m *Manager) Session(ctx context.Context, opts domain.LoaderOptions) (*Session, error) {
	opts = opts.WithDefaults()
	return m.registry.GetOrCreate(ctx, opts.Instance, func(ctx context.Context) (*Session, error) {
		return m.bootstrapper.Build(ctx, opts)
	})
}

// Registry returns the registry the manager stores sessions in.
func (m *Manager) Registry() *Registry {
	return m.registry
}
