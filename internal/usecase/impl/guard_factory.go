// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/provider"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/usecase"

	"go.uber.org/fx"
)

// GuardFactoryParams holds dependencies for the guard factory, injected by Fx
type GuardFactoryParams struct {
	fx.In

	Users        provider.UserProvider
	AccessTokens provider.AccessTokenProvider
	Events       service.EventSink
	Config       *config.Config
	Logger       *slog.Logger
}

// guardFactory implements the GuardFactory interface. It is shared across
// requests; every guard it builds is not.
type guardFactory struct {
	users         provider.UserProvider
	capabilities  provider.Capabilities
	accessTokens  provider.AccessTokenProvider
	events        service.EventSink
	defaultGuard  string
	rememberTTL   time.Duration
	recycleBuffer time.Duration
	now           func() time.Time
	logger        *slog.Logger
}

// NewGuardFactory is the constructor for guardFactory.
// Optional provider capabilities are detected here, once.
func NewGuardFactory(params GuardFactoryParams) usecase.GuardFactory {
	return newGuardFactory(params, time.Now)
}

func newGuardFactory(params GuardFactoryParams, now func() time.Time) *guardFactory {
	caps := provider.CapabilitiesOf(params.Users)
	if !caps.SupportsRememberMe() {
		params.Logger.Warn("User provider does not support remember me tokens",
			slog.Bool("finder", caps.Finder != nil),
			slog.Bool("creator", caps.Creator != nil),
			slog.Bool("recycler", caps.Recycler != nil),
			slog.Bool("deleter", caps.Deleter != nil),
		)
	}

	return &guardFactory{
		users:         params.Users,
		capabilities:  caps,
		accessTokens:  params.AccessTokens,
		events:        params.Events,
		defaultGuard:  params.Config.Auth.DefaultGuard,
		rememberTTL:   params.Config.Auth.RememberMe.TTL,
		recycleBuffer: params.Config.Auth.RememberMe.RecycleBuffer,
		now:           now,
		logger:        params.Logger,
	}
}

// SessionGuard builds a session guard for one request.
func (f *guardFactory) SessionGuard(name string, session service.Session, cookies service.CookieJar) usecase.SessionGuard {
	if name == "" {
		name = f.defaultGuard
	}

	return &sessionGuard{
		name:          name,
		session:       session,
		cookies:       cookies,
		users:         f.users,
		capabilities:  f.capabilities,
		events:        f.events,
		rememberTTL:   f.rememberTTL,
		recycleBuffer: f.recycleBuffer,
		now:           f.now,
		logger:        f.logger,
	}
}

// AccessTokenGuard builds a bearer token guard for one request.
func (f *guardFactory) AccessTokenGuard(name string, authorization string) usecase.AccessTokenGuard {
	return &accessTokenGuard{
		name:          name,
		authorization: authorization,
		users:         f.users,
		tokens:        f.accessTokens,
		events:        f.events,
		now:           f.now,
		logger:        f.logger,
	}
}

// DefaultGuard returns the configured session guard name.
func (f *guardFactory) DefaultGuard() string {
	return f.defaultGuard
}

// emitter builds and sends guard events for one group.
type emitter struct {
	group string
	guard string
	sink  service.EventSink
	now   func() time.Time
}

func (e emitter) event(ctx context.Context, eventType service.AuthEventType) service.AuthEvent {
	event := service.NewAuthEvent(e.group, eventType, e.guard, e.now())
	event.RequestID = deliverycontext.RequestIDFrom(ctx)

	return event
}

// authenticated records the principal on the request so the access log can
// attribute it.
func (e emitter) authenticated(ctx context.Context, userID string) {
	deliverycontext.RecordPrincipal(ctx, e.guard, userID)
}

func (e emitter) emit(ctx context.Context, event service.AuthEvent) {
	if e.sink == nil {
		return
	}

	e.sink.Emit(ctx, event)
}
