package session

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for NewStore, injected by Fx
type StoreParams struct {
	fx.In

	Config *config.Config
	Redis  *redis.Client `optional:"true"`
	Logger *slog.Logger
}

// NewStore picks the session store configured by session.driver.
func NewStore(params StoreParams) (service.SessionStore, error) {
	cfg := params.Config.Session

	switch cfg.Driver {
	case "redis":
		if params.Redis == nil {
			return nil, errors.New("redis session driver requires a redis client")
		}
		params.Logger.Info("Using Redis session store")

		return NewRedisStore(params.Redis), nil
	case "memory":
		params.Logger.Info("Using in-memory session store", slog.Int("capacity", cfg.MemoryCapacity))

		return NewMemoryStore(cfg.MemoryCapacity, cfg.TTL), nil
	default:
		return nil, errors.Errorf("unsupported session driver %q", cfg.Driver)
	}
}

// Manager loads request sessions from a store and writes them back.
type Manager struct {
	store  service.SessionStore
	ttl    time.Duration
	logger *slog.Logger
}

// ManagerParams holds dependencies for the session manager, injected by Fx
type ManagerParams struct {
	fx.In

	Store  service.SessionStore
	Config *config.Config
	Logger *slog.Logger
}

// NewManager creates the session manager.
func NewManager(params ManagerParams) *Manager {
	return &Manager{
		store:  params.Store,
		ttl:    params.Config.Session.TTL,
		logger: params.Logger,
	}
}

func (m *Manager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// TTL is how long an idle session lives.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Load returns the session for id. Unknown, expired or malformed ids start a
// fresh session; store failures are returned.
func (m *Manager) Load(ctx context.Context, id string) (*RequestSession, error) {
	if id != "" && validID(id) {
		data, err := m.store.Load(ctx, id)
		if err == nil {
			return newRequestSession(id, data, false), nil
		}

		if !errors.Is(err, service.ErrSessionNotFound) {
			return nil, errors.Wrap(err, "failed to load session")
		}

		m.log(ctx).Debug("Session not found, starting a new one")
	}

	freshID, err := newID()
	if err != nil {
		return nil, err
	}

	return newRequestSession(freshID, nil, true), nil
}

// Commit persists the session and deletes ids abandoned by Regenerate.
// It reports whether the client should receive the session cookie.
func (m *Manager) Commit(ctx context.Context, s *RequestSession) (bool, error) {
	for _, id := range s.obsolete {
		if err := m.store.Delete(ctx, id); err != nil {
			m.log(ctx).Warn("Failed to delete regenerated session", slog.Any("error", err))
		}
	}
	s.obsolete = nil

	// Anonymous visitors that never wrote anything get no session.
	if s.fresh && len(s.data) == 0 {
		return false, nil
	}

	// Existing sessions are rewritten to slide their expiry.
	if err := m.store.Save(ctx, s.id, s.data, m.ttl); err != nil {
		return false, errors.Wrap(err, "failed to save session")
	}

	s.fresh = false
	s.dirty = false

	return true, nil
}

// Destroy removes the session from the store.
func (m *Manager) Destroy(ctx context.Context, s *RequestSession) error {
	return m.store.Delete(ctx, s.id)
}
