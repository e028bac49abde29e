package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/provider"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"

	"github.com/google/uuid"
)

// sessionGuard implements the SessionGuard interface for a single request.
type sessionGuard struct {
	name          string
	session       service.Session
	cookies       service.CookieJar
	users         provider.UserProvider
	capabilities  provider.Capabilities
	events        service.EventSink
	rememberTTL   time.Duration
	recycleBuffer time.Duration
	now           func() time.Time
	logger        *slog.Logger

	user                    *entity.User
	authenticationError     error
	authenticationAttempted bool
	isAuthenticated         bool
	isLoggedOut             bool
	viaRemember             bool
}

// log returns a request-scoped logger if available, otherwise falls back to the guard's logger.
func (g *sessionGuard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger).With(slog.String("guard", g.name))
}

func (g *sessionGuard) emitter() emitter {
	return emitter{group: service.SessionAuthGroup, guard: g.name, sink: g.events, now: g.now}
}

func (g *sessionGuard) event(ctx context.Context, eventType service.AuthEventType) service.AuthEvent {
	event := g.emitter().event(ctx, eventType)
	event.SessionID = g.session.ID()

	return event
}

func (g *sessionGuard) Name() string {
	return g.name
}

// SessionKeyName is the session key holding the user id.
func (g *sessionGuard) SessionKeyName() string {
	return "auth_" + g.name
}

// RememberMeKeyName is the name of the remember-me cookie.
func (g *sessionGuard) RememberMeKeyName() string {
	return "remember_" + g.name
}

func (g *sessionGuard) User() *entity.User {
	return g.user
}

func (g *sessionGuard) IsAuthenticated() bool {
	return g.isAuthenticated
}

func (g *sessionGuard) IsLoggedOut() bool {
	return g.isLoggedOut
}

func (g *sessionGuard) ViaRemember() bool {
	return g.viaRemember
}

func (g *sessionGuard) AuthenticationAttempted() bool {
	return g.authenticationAttempted
}

// VerifyCredentials checks uid and password against the user provider.
func (g *sessionGuard) VerifyCredentials(ctx context.Context, uid, password string) (*entity.User, error) {
	user, err := g.users.VerifyCredentials(ctx, uid, password)
	if err != nil {
		g.log(ctx).Error("Failed to verify credentials", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify credentials")
	}

	if user == nil {
		failure := domainerrors.ErrInvalidCredentials.WrapMessage("invalid credentials")

		event := g.event(ctx, service.LoginFailed)
		event.UID = uid
		event.Error = domainerrors.ErrInvalidCredentials.Message()
		g.emitter().emit(ctx, event)

		return nil, failure
	}

	event := g.event(ctx, service.CredentialsVerified)
	event.UserID = user.ID.String()
	event.UID = uid
	g.emitter().emit(ctx, event)

	return user, nil
}

// Login establishes a fresh session for user.
func (g *sessionGuard) Login(ctx context.Context, user *entity.User, remember bool) error {
	// 1. Announce the attempt
	attempted := g.event(ctx, service.LoginAttempted)
	attempted.Remember = remember
	if user != nil {
		attempted.UserID = user.ID.String()
	}
	g.emitter().emit(ctx, attempted)

	// 2. Adapt the user for the session
	guardUser, err := g.users.CreateUserForGuard(user)
	if err != nil {
		return errors.Wrap(err, "failed to create guard user")
	}

	// 3. Remember me needs a provider that can persist tokens. Nothing has been mutated yet.
	if remember && !g.capabilities.CanCreateRememberMeTokens() {
		return domainerrors.ErrMisconfiguredProvider.WrapMessage("user provider cannot create remember me tokens")
	}

	// 4. Issue or clear the remember-me cookie
	if remember {
		if err := g.issueRememberMeToken(ctx, guardUser); err != nil {
			return err
		}
	} else if _, ok := g.cookies.GetEncrypted(g.RememberMeKeyName()); ok {
		g.cookies.Clear(g.RememberMeKeyName())
	}

	// 5. Store the user and rotate the session id
	if err := g.startSession(guardUser.ID()); err != nil {
		return err
	}

	// 6. Update guard state
	g.markAuthenticated(guardUser.Original(), false)
	g.isLoggedOut = false

	succeeded := g.event(ctx, service.LoginSucceeded)
	succeeded.UserID = guardUser.ID().String()
	succeeded.Remember = remember
	g.emitter().authenticated(ctx, succeeded.UserID)
	g.emitter().emit(ctx, succeeded)

	g.log(ctx).Info("User logged in", slog.Any("user_id", guardUser.ID()), slog.Bool("remember", remember))

	return nil
}

func (g *sessionGuard) issueRememberMeToken(ctx context.Context, guardUser *provider.GuardUser) error {
	rememberToken, err := entity.NewRememberMeToken(guardUser.ID(), g.name, g.rememberTTL, g.now())
	if err != nil {
		return errors.WithStack(err)
	}

	if err := g.capabilities.Creator.CreateRememberMeToken(ctx, rememberToken); err != nil {
		return errors.Wrap(err, "failed to persist remember me token")
	}

	value, ok := rememberToken.ReleaseValue()
	if !ok {
		return errors.New("remember me token value already released")
	}

	if err := g.cookies.SetEncrypted(g.RememberMeKeyName(), value, g.rememberTTL); err != nil {
		return errors.Wrap(err, "failed to set remember me cookie")
	}

	return nil
}

func (g *sessionGuard) startSession(userID uuid.UUID) error {
	g.session.Put(g.SessionKeyName(), userID.String())

	if err := g.session.Regenerate(); err != nil {
		g.session.Forget(g.SessionKeyName())

		return errors.Wrap(err, "failed to regenerate session")
	}

	return nil
}

// LoginViaID logs in the user with id.
func (g *sessionGuard) LoginViaID(ctx context.Context, id uuid.UUID, remember bool) error {
	user, err := g.users.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if user == nil {
		event := g.event(ctx, service.LoginFailed)
		event.UserID = id.String()
		event.Remember = remember
		event.Error = "login failed"
		g.emitter().emit(ctx, event)

		return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	return g.Login(ctx, user, remember)
}

// Attempt verifies the credentials and logs the user in.
func (g *sessionGuard) Attempt(ctx context.Context, uid, password string, remember bool) (*entity.User, error) {
	user, err := g.VerifyCredentials(ctx, uid, password)
	if err != nil {
		return nil, err
	}

	if err := g.Login(ctx, user, remember); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate resolves the user from the session or the remember-me cookie.
func (g *sessionGuard) Authenticate(ctx context.Context) (*entity.User, error) {
	if g.authenticationAttempted {
		return g.replayAuthentication()
	}
	g.authenticationAttempted = true

	g.emitter().emit(ctx, g.event(ctx, service.AuthenticationAttempted))

	// 1. A session bound user wins
	if rawID, ok := g.session.Get(g.SessionKeyName()); ok {
		return g.authenticateViaSession(ctx, rawID)
	}

	// 2. Fall back to the remember-me cookie
	return g.authenticateViaRememberMe(ctx)
}

func (g *sessionGuard) replayAuthentication() (*entity.User, error) {
	if g.user != nil {
		return g.user, nil
	}

	if g.authenticationError != nil {
		return nil, g.authenticationError
	}

	return nil, domainerrors.ErrUnauthorized.WrapMessage("user is not authenticated")
}

func (g *sessionGuard) authenticateViaSession(ctx context.Context, rawID string) (*entity.User, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return g.authenticationFailed(ctx, domainerrors.ErrUnauthorized.WrapMessage("invalid session user id"))
	}

	user, err := g.users.FindByID(ctx, id)
	if err != nil {
		return g.authenticationFailed(ctx, errors.Wrap(err, "failed to find session user"))
	}

	if user == nil {
		return g.authenticationFailed(ctx, domainerrors.ErrUnauthorized.WrapMessage("session user no longer exists"))
	}

	return g.authenticationSucceeded(ctx, user, false), nil
}

func (g *sessionGuard) authenticateViaRememberMe(ctx context.Context) (*entity.User, error) {
	cookieValue, ok := g.cookies.GetEncrypted(g.RememberMeKeyName())
	if !ok {
		return g.authenticationFailed(ctx, domainerrors.ErrUnauthorized.WrapMessage("no session or remember me cookie"))
	}

	if !g.capabilities.SupportsRememberMe() {
		g.log(ctx).Warn("Ignoring remember me cookie, user provider does not support remember me tokens")

		return g.authenticationFailed(ctx, domainerrors.ErrUnauthorized.WrapMessage("remember me tokens are disabled"))
	}

	// 1. Decode and verify the cookie
	series, secret, ok := entity.DecodeRememberMeToken(cookieValue)
	if !ok {
		return g.authenticationFailed(ctx, domainerrors.ErrUnauthorized.WrapMessage("invalid remember me cookie"))
	}

	rememberToken, err := g.capabilities.Finder.FindRememberMeTokenBySeries(ctx, series)
	if err != nil {
		return g.authenticationFailed(ctx, errors.Wrap(err, "failed to find remember me token"))
	}

	now := g.now()
	if rememberToken == nil || rememberToken.Guard != g.name || rememberToken.IsExpired(now) || !rememberToken.Verify(secret) {
		return g.authenticationFailed(ctx, domainerrors.ErrUnauthorized.WrapMessage("invalid remember me token"))
	}

	// 2. Resolve the owner
	user, err := g.users.FindByID(ctx, rememberToken.UserID)
	if err != nil {
		return g.authenticationFailed(ctx, errors.Wrap(err, "failed to find remember me user"))
	}

	if user == nil {
		return g.authenticationFailed(ctx, domainerrors.ErrUnauthorized.WrapMessage("remember me user no longer exists"))
	}

	// 3. Start a new session
	if err := g.startSession(user.ID); err != nil {
		return g.authenticationFailed(ctx, err)
	}

	// 4. Recycle the token and hand the resulting value back to the client
	cookie, write, err := g.recycleRememberMeToken(ctx, rememberToken, cookieValue, now)
	if err != nil {
		g.session.Forget(g.SessionKeyName())

		return g.authenticationFailed(ctx, err)
	}

	if write {
		if err := g.cookies.SetEncrypted(g.RememberMeKeyName(), cookie, g.rememberTTL); err != nil {
			g.session.Forget(g.SessionKeyName())

			return g.authenticationFailed(ctx, errors.Wrap(err, "failed to set remember me cookie"))
		}
	}

	return g.authenticationSucceeded(ctx, user, true), nil
}

// recycleRememberMeToken returns the cookie value for the response and whether
// it should be written. When a concurrent request wins the conditional write,
// the client cookie is left alone so the winner's value reaches it. The write
// is never retried.
func (g *sessionGuard) recycleRememberMeToken(
	ctx context.Context,
	rememberToken *entity.RememberMeToken,
	cookieValue string,
	now time.Time,
) (string, bool, error) {
	previousUpdatedAt := rememberToken.UpdatedAt

	cookie, rotated, err := rememberToken.Recycle(cookieValue, g.rememberTTL, now, g.recycleBuffer)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to recycle remember me token")
	}

	if !rotated {
		return cookie, true, nil
	}

	committed, err := g.capabilities.Recycler.RecycleRememberMeToken(ctx, rememberToken, previousUpdatedAt)
	if err != nil {
		return "", false, errors.Wrap(err, "failed to persist recycled remember me token")
	}

	if !committed {
		g.log(ctx).Warn("Remember me token was recycled by a concurrent request",
			slog.String("series", rememberToken.Series),
		)

		return "", false, nil
	}

	return cookie, true, nil
}

func (g *sessionGuard) authenticationSucceeded(ctx context.Context, user *entity.User, viaRemember bool) *entity.User {
	g.markAuthenticated(user, viaRemember)

	event := g.event(ctx, service.AuthenticationSucceeded)
	event.UserID = user.ID.String()
	event.ViaRemember = viaRemember
	g.emitter().authenticated(ctx, event.UserID)
	g.emitter().emit(ctx, event)

	return user
}

func (g *sessionGuard) authenticationFailed(ctx context.Context, err error) (*entity.User, error) {
	g.authenticationError = err
	g.isAuthenticated = false
	g.user = nil

	event := g.event(ctx, service.AuthenticationFailed)
	event.Error = err.Error()
	g.emitter().emit(ctx, event)

	if !errors.Is(err, domainerrors.ErrUnauthorized) {
		g.log(ctx).Error("Authentication failed", slog.Any("error", err))
	}

	return nil, err
}

func (g *sessionGuard) markAuthenticated(user *entity.User, viaRemember bool) {
	g.user = user
	g.isAuthenticated = true
	g.viaRemember = viaRemember
	g.authenticationError = nil
}

// Check reports whether the request is authenticated.
func (g *sessionGuard) Check(ctx context.Context) (bool, error) {
	if _, err := g.Authenticate(ctx); err != nil {
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Logout clears the session and the remember-me cookie. Revoking the stored
// remember-me token is best effort.
func (g *sessionGuard) Logout(ctx context.Context) error {
	// 1. Capture what is needed for revocation before clearing
	cookieValue, hasCookie := g.cookies.GetEncrypted(g.RememberMeKeyName())
	previousUser := g.user

	// 2. Clear client and session state
	g.session.Forget(g.SessionKeyName())
	g.cookies.Clear(g.RememberMeKeyName())

	g.user = nil
	g.isAuthenticated = false
	g.viaRemember = false
	g.isLoggedOut = true

	event := g.event(ctx, service.LoggedOut)
	if previousUser != nil {
		event.UserID = previousUser.ID.String()
	}
	g.emitter().emit(ctx, event)

	// 3. Revoke the persisted token
	if !hasCookie || !g.capabilities.CanDeleteRememberMeTokens() {
		return nil
	}

	series, _, ok := entity.DecodeRememberMeToken(cookieValue)
	if !ok {
		return nil
	}

	if err := g.capabilities.Deleter.DeleteRememberMeTokenBySeries(ctx, series); err != nil {
		g.log(ctx).Warn("Failed to delete remember me token on logout", slog.Any("error", err))
	}

	return nil
}

// GetUserOrFail returns the authenticated user or ErrUnauthorized.
func (g *sessionGuard) GetUserOrFail() (*entity.User, error) {
	if g.user == nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("user is not authenticated")
	}

	return g.user, nil
}
