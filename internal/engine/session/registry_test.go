package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsload/internal/core/domain"
	"go.trai.ch/tsload/internal/engine/session"
)

func TestRegistry_GetOrCreate_BuildsOnce(t *testing.T) {
	registry := session.NewRegistry()
	built := &session.Session{}
	calls := 0

	build := func(context.Context) (*session.Session, error) {
		calls++
		return built, nil
	}

	for range 5 {
		got, err := registry.GetOrCreate(t.Context(), "default", build)
		require.NoError(t, err)
		assert.Same(t, built, got)
	}
	assert.Equal(t, 1, calls)
}

func TestRegistry_GetOrCreate_FailureIsNotCached(t *testing.T) {
	registry := session.NewRegistry()
	errBoom := errors.New("boom")

	_, err := registry.GetOrCreate(t.Context(), "default", func(context.Context) (*session.Session, error) {
		return nil, errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, ok := registry.Get("default")
	assert.False(t, ok)

	built := &session.Session{}
	got, err := registry.GetOrCreate(t.Context(), "default", func(context.Context) (*session.Session, error) {
		return built, nil
	})
	require.NoError(t, err)
	assert.Same(t, built, got)
}

func TestRegistry_GetOrCreate_NilSession(t *testing.T) {
	registry := session.NewRegistry()

	_, err := registry.GetOrCreate(t.Context(), "default", func(context.Context) (*session.Session, error) {
		return nil, nil
	})
	require.ErrorIs(t, err, domain.ErrSessionBuildFailed)
	assert.Empty(t, registry.Keys())
}

func TestRegistry_GetOrCreate_ConcurrentCallersShareOneBuild(t *testing.T) {
	registry := session.NewRegistry()
	built := &session.Session{}
	var calls atomic.Int32

	build := func(context.Context) (*session.Session, error) {
		calls.Add(1)
		return built, nil
	}

	const callers = 32
	results := make([]*session.Session, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Go(func() {
			got, err := registry.GetOrCreate(context.Background(), "shared", build)
			assert.NoError(t, err)
			results[i] = got
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, got := range results {
		assert.Same(t, built, got)
	}
}

func TestRegistry_GetOrCreate_KeysAreIndependent(t *testing.T) {
	registry := session.NewRegistry()
	first := &session.Session{}
	second := &session.Session{}

	got, err := registry.GetOrCreate(t.Context(), "b", func(context.Context) (*session.Session, error) {
		return first, nil
	})
	require.NoError(t, err)
	assert.Same(t, first, got)

	got, err = registry.GetOrCreate(t.Context(), "a", func(context.Context) (*session.Session, error) {
		return second, nil
	})
	require.NoError(t, err)
	assert.Same(t, second, got)

	assert.Equal(t, []string{"a", "b"}, registry.Keys())
}
