package ports

import (
	"context"

	"go.trai.ch/tsload/internal/core/domain"
)

//go:generate mockgen -source=hooks.go -destination=mocks/mock_hooks.go -package=mocks

// SessionHooks are the lifecycle callbacks a session exposes to the host build tool.
type SessionHooks interface {
	// WatchRun is called before a rebuild with the files that changed since the last one.
	WatchRun(ctx context.Context, changes []domain.FileChange) error
	// AfterCompile is called when a compilation finished. It publishes accumulated diagnostics.
	AfterCompile(ctx context.Context) error
}

// HookRegistrar is where a session registers its lifecycle callbacks.
type HookRegistrar interface {
	// Register attaches hooks under the session key.
	Register(key string, hooks SessionHooks)
}
