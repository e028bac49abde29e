package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(store service.SessionStore) *Manager {
	cfg := &config.Config{Session: &config.SessionConfig{TTL: time.Hour}}

	return NewManager(ManagerParams{
		Store:  store,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestManager_LoadUnknownStartsFreshSession(t *testing.T) {
	manager := newTestManager(NewMemoryStore(10, time.Hour))

	s, err := manager.Load(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, validID(s.ID()))
	assert.Empty(t, s.Data())

	other, err := manager.Load(context.Background(), "not-a-session-id")
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-session-id", other.ID())
	assert.NotEqual(t, s.ID(), other.ID())
}

func TestManager_CommitSkipsEmptyFreshSession(t *testing.T) {
	manager := newTestManager(NewMemoryStore(10, time.Hour))

	s, err := manager.Load(context.Background(), "")
	require.NoError(t, err)

	write, err := manager.Commit(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, write)
}

func TestManager_RoundTrip(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(NewMemoryStore(10, time.Hour))

	s, err := manager.Load(ctx, "")
	require.NoError(t, err)
	s.Put("auth_web", "42")
	assert.True(t, s.IsDirty())

	write, err := manager.Commit(ctx, s)
	require.NoError(t, err)
	assert.True(t, write)
	assert.False(t, s.IsDirty())

	loaded, err := manager.Load(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, s.ID(), loaded.ID())

	value, ok := loaded.Get("auth_web")
	assert.True(t, ok)
	assert.Equal(t, "42", value)
}

func TestManager_RegenerateDeletesPreviousID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10, time.Hour)
	manager := newTestManager(store)

	s, err := manager.Load(ctx, "")
	require.NoError(t, err)
	s.Put("auth_web", "42")
	_, err = manager.Commit(ctx, s)
	require.NoError(t, err)
	oldID := s.ID()

	s, err = manager.Load(ctx, oldID)
	require.NoError(t, err)
	require.NoError(t, s.Regenerate())
	assert.NotEqual(t, oldID, s.ID())

	value, ok := s.Get("auth_web")
	assert.True(t, ok)
	assert.Equal(t, "42", value)

	write, err := manager.Commit(ctx, s)
	require.NoError(t, err)
	assert.True(t, write)

	_, err = store.Load(ctx, oldID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	_, err = store.Load(ctx, s.ID())
	assert.NoError(t, err)
}

func TestManager_ForgetLastKeyKeepsExistingSession(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(NewMemoryStore(10, time.Hour))

	s, err := manager.Load(ctx, "")
	require.NoError(t, err)
	s.Put("auth_web", "42")
	_, err = manager.Commit(ctx, s)
	require.NoError(t, err)

	s, err = manager.Load(ctx, s.ID())
	require.NoError(t, err)
	s.Forget("auth_web")
	s.Forget("missing")

	write, err := manager.Commit(ctx, s)
	require.NoError(t, err)
	assert.True(t, write)

	loaded, err := manager.Load(ctx, s.ID())
	require.NoError(t, err)
	_, ok := loaded.Get("auth_web")
	assert.False(t, ok)
}

func TestManager_LoadPropagatesStoreFailure(t *testing.T) {
	store, mr := setupRedisStore(t)
	manager := newTestManager(store)

	id, err := newID()
	require.NoError(t, err)
	mr.Close()

	_, err = manager.Load(context.Background(), id)
	assert.Error(t, err)
}

func TestRequestSession_PutSameValueIsNotDirty(t *testing.T) {
	s := newRequestSession("id", map[string]string{"k": "v"}, false)

	s.Put("k", "v")
	assert.False(t, s.IsDirty())

	s.Put("k", "w")
	assert.True(t, s.IsDirty())
}
