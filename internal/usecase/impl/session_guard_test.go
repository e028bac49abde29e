package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/provider"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
	mockProvider "gatehouse/internal/mocks/provider"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "secret-password"

type guardFixture struct {
	clock   *fakeClock
	session *fakeSession
	cookies *fakeCookieJar
	sink    *recordingSink
	factory *guardFactory
}

func newGuardFixture(users provider.UserProvider) *guardFixture {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	sink := &recordingSink{}

	return &guardFixture{
		clock:   clock,
		session: newFakeSession(),
		cookies: newFakeCookieJar(),
		sink:    sink,
		factory: newGuardFactory(GuardFactoryParams{
			Users:  users,
			Events: sink,
			Config: newTestConfig(),
			Logger: newDiscardLogger(),
		}, clock.Now),
	}
}

func (f *guardFixture) guard() usecase.SessionGuard {
	return f.factory.SessionGuard("web", f.session, f.cookies)
}

// nextRequest simulates a new browser request that only carries the given cookie.
func (f *guardFixture) nextRequest(cookie string) {
	f.session = newFakeSession()
	f.cookies = newFakeCookieJar()
	if cookie != "" {
		f.cookies.values["remember_web"] = cookie
	}
}

func newTestUser() *entity.User {
	return &entity.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
}

func TestSessionGuard_KeyNames(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider())
	guard := fixture.guard()

	assert.Equal(t, "web", guard.Name())
	assert.Equal(t, "auth_web", guard.SessionKeyName())
	assert.Equal(t, "remember_web", guard.RememberMeKeyName())
}

func TestSessionGuard_Factory_DefaultGuardName(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider())

	guard := fixture.factory.SessionGuard("", fixture.session, fixture.cookies)

	assert.Equal(t, "web", guard.Name())
	assert.Equal(t, "web", fixture.factory.DefaultGuard())
}

func TestSessionGuard_Authenticate_Memoized(t *testing.T) {
	user := newTestUser()
	users := newLookupProvider(user)
	fixture := newGuardFixture(users)
	fixture.session.data["auth_web"] = user.ID.String()
	guard := fixture.guard()

	first, err := guard.Authenticate(context.Background())
	require.NoError(t, err)
	second, err := guard.Authenticate(context.Background())
	require.NoError(t, err)

	assert.Same(t, user, first)
	assert.Same(t, user, second)
	assert.Equal(t, 1, users.findCalls)
	assert.True(t, guard.IsAuthenticated())
	assert.False(t, guard.ViaRemember())
	assert.Equal(t, []service.AuthEventType{
		service.AuthenticationAttempted,
		service.AuthenticationSucceeded,
	}, fixture.sink.Types())
}

func TestSessionGuard_Attempt_RememberIssuesCookie(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	guard := fixture.guard()
	originalSessionID := fixture.session.ID()

	loggedIn, err := guard.Attempt(context.Background(), user.Email, testPassword, true)
	require.NoError(t, err)
	assert.Same(t, user, loggedIn)

	// The cookie carries a series that is stored with a matching hash.
	cookie, ok := fixture.cookies.values["remember_web"]
	require.True(t, ok)
	series, secret, ok := entity.DecodeRememberMeToken(cookie)
	require.True(t, ok)

	stored, ok := store.tokens[series]
	require.True(t, ok)
	assert.True(t, stored.Verify(secret))
	assert.Equal(t, user.ID, stored.UserID)
	assert.Equal(t, "web", stored.Guard)
	assert.Equal(t, 30*24*time.Hour, fixture.cookies.maxAges["remember_web"])

	// The session is bound to the user under a fresh id.
	assert.Equal(t, user.ID.String(), fixture.session.data["auth_web"])
	assert.NotEqual(t, originalSessionID, fixture.session.ID())
	assert.Equal(t, 1, fixture.session.regenerations)

	assert.True(t, guard.IsAuthenticated())
	assert.False(t, guard.IsLoggedOut())
	assert.Equal(t, []service.AuthEventType{
		service.CredentialsVerified,
		service.LoginAttempted,
		service.LoginSucceeded,
	}, fixture.sink.Types())
	assert.True(t, fixture.sink.Last().Remember)
}

func TestSessionGuard_Attempt_InvalidCredentials(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(newLookupProvider(user))
	guard := fixture.guard()

	loggedIn, err := guard.Attempt(context.Background(), user.Email, "wrong", false)

	require.Error(t, err)
	assert.Nil(t, loggedIn)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Empty(t, fixture.session.data)
	assert.Equal(t, 0, fixture.session.regenerations)
	assert.Equal(t, []service.AuthEventType{service.LoginFailed}, fixture.sink.Types())
	assert.Equal(t, user.Email, fixture.sink.Last().UID)
}

func TestSessionGuard_Attempt_UnknownUserSameError(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider(newTestUser()))

	_, unknownErr := fixture.guard().Attempt(context.Background(), "nobody@example.com", testPassword, false)
	_, wrongErr := fixture.guard().Attempt(context.Background(), "ada@example.com", "wrong", false)

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestSessionGuard_Authenticate_NoSessionNoCookie(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider())
	guard := fixture.guard()

	user, err := guard.Authenticate(context.Background())

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.True(t, guard.AuthenticationAttempted())
	assert.False(t, guard.IsAuthenticated())

	ok, err := guard.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []service.AuthEventType{
		service.AuthenticationAttempted,
		service.AuthenticationFailed,
	}, fixture.sink.Types())
}

func TestSessionGuard_Authenticate_StaleSessionUser(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider())
	staleID := uuid.New().String()
	fixture.session.data["auth_web"] = staleID
	guard := fixture.guard()

	_, err := guard.Authenticate(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.Equal(t, staleID, fixture.session.data["auth_web"], "session must not be cleared")
}

func TestSessionGuard_Authenticate_MalformedSessionUser(t *testing.T) {
	users := newLookupProvider()
	fixture := newGuardFixture(users)
	fixture.session.data["auth_web"] = "not-a-uuid"

	_, err := fixture.guard().Authenticate(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.Equal(t, 0, users.findCalls)
}

func TestSessionGuard_Check_PropagatesInfrastructureFailure(t *testing.T) {
	user := newTestUser()
	users := newLookupProvider(user)
	dbErr := errors.New("connection refused")
	users.findErr = dbErr
	fixture := newGuardFixture(users)
	fixture.session.data["auth_web"] = user.ID.String()
	guard := fixture.guard()

	ok, err := guard.Check(context.Background())

	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))

	// The failure is memoized.
	_, again := guard.Authenticate(context.Background())
	assert.True(t, errors.Is(again, dbErr))
	assert.Equal(t, 1, users.findCalls)
}

func TestSessionGuard_Authenticate_CancelledContext(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(newLookupProvider(user))
	fixture.session.data["auth_web"] = user.ID.String()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fixture.guard().Authenticate(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestSessionGuard_Login_RememberWithoutCreator(t *testing.T) {
	user := newTestUser()
	users := mockProvider.NewMockUserProvider(t)
	fixture := newGuardFixture(users)
	guard := fixture.guard()

	users.EXPECT().CreateUserForGuard(user).
		Return(func(u *entity.User) (*provider.GuardUser, error) { return provider.NewGuardUser(u) }).
		Once()

	err := guard.Login(context.Background(), user, true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMisconfiguredProvider))
	assert.Empty(t, fixture.session.data)
	assert.Equal(t, 0, fixture.session.regenerations)
	assert.Equal(t, 0, fixture.cookies.sets)
	assert.False(t, guard.IsAuthenticated())
}

func TestSessionGuard_Authenticate_RememberCookieWithoutCapabilities(t *testing.T) {
	users := mockProvider.NewMockUserProvider(t)
	fixture := newGuardFixture(users)
	fixture.cookies.values["remember_web"] = "c2VyaWVz.c2VjcmV0"
	guard := fixture.guard()

	_, err := guard.Authenticate(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.Empty(t, fixture.session.data)
	assert.Equal(t, "c2VyaWVz.c2VjcmV0", fixture.cookies.values["remember_web"])
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestSessionGuard_Login_RejectsUserWithoutID(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider())

	err := fixture.guard().Login(context.Background(), &entity.User{}, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidGuardUser))
	assert.Empty(t, fixture.session.data)
}

func TestSessionGuard_Login_WithoutRememberClearsCookie(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(newLookupProvider(user))
	fixture.cookies.values["remember_web"] = "stale"

	err := fixture.guard().Login(context.Background(), user, false)

	require.NoError(t, err)
	_, ok := fixture.cookies.values["remember_web"]
	assert.False(t, ok)
	assert.Contains(t, fixture.cookies.cleared, "remember_web")
}

func TestSessionGuard_Login_RegenerateFailure(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(newLookupProvider(user))
	storeErr := errors.New("redis unavailable")
	fixture.session.regenerateErr = storeErr
	guard := fixture.guard()

	err := guard.Login(context.Background(), user, false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	assert.False(t, guard.IsAuthenticated())
	assert.Empty(t, fixture.session.data)
}

func TestSessionGuard_LoginViaID(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(newLookupProvider(user))
	guard := fixture.guard()

	require.NoError(t, guard.LoginViaID(context.Background(), user.ID, false))

	assert.Same(t, user, guard.User())
	assert.Equal(t, user.ID.String(), fixture.session.data["auth_web"])
}

func TestSessionGuard_LoginViaID_UnknownUser(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider())
	guard := fixture.guard()

	err := guard.LoginViaID(context.Background(), uuid.New(), false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Empty(t, fixture.session.data)
	assert.Equal(t, []service.AuthEventType{service.LoginFailed}, fixture.sink.Types())
}

func loginWithRemember(t *testing.T, fixture *guardFixture, user *entity.User) string {
	t.Helper()

	require.NoError(t, fixture.guard().Login(context.Background(), user, true))
	cookie, ok := fixture.cookies.values["remember_web"]
	require.True(t, ok)

	return cookie
}

func TestSessionGuard_Authenticate_RememberWithinBuffer(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	cookie := loginWithRemember(t, fixture, user)

	fixture.nextRequest(cookie)
	fixture.clock.Advance(30 * time.Second)
	guard := fixture.guard()

	authenticated, err := guard.Authenticate(context.Background())

	require.NoError(t, err)
	assert.Same(t, user, authenticated)
	assert.True(t, guard.ViaRemember())
	assert.Equal(t, cookie, fixture.cookies.values["remember_web"])
	assert.Equal(t, 0, store.recycled)
	assert.Equal(t, user.ID.String(), fixture.session.data["auth_web"])
	assert.Equal(t, 1, fixture.session.regenerations)
	assert.True(t, fixture.sink.Last().ViaRemember)
}

func TestSessionGuard_Authenticate_RememberPastBuffer(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	oldCookie := loginWithRemember(t, fixture, user)

	fixture.nextRequest(oldCookie)
	fixture.clock.Advance(90 * time.Second)

	_, err := fixture.guard().Authenticate(context.Background())
	require.NoError(t, err)

	newCookie := fixture.cookies.values["remember_web"]
	require.NotEqual(t, oldCookie, newCookie)
	assert.Equal(t, 1, store.recycled)

	oldSeries, _, _ := entity.DecodeRememberMeToken(oldCookie)
	newSeries, newSecret, ok := entity.DecodeRememberMeToken(newCookie)
	require.True(t, ok)
	assert.Equal(t, oldSeries, newSeries)

	stored := store.tokens[newSeries]
	assert.True(t, stored.Verify(newSecret))
	assert.Equal(t, fixture.clock.Now(), stored.UpdatedAt)

	// The previous value no longer authenticates.
	fixture.nextRequest(oldCookie)
	_, err = fixture.guard().Authenticate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	fixture.nextRequest(newCookie)
	_, err = fixture.guard().Authenticate(context.Background())
	require.NoError(t, err)
}

func TestSessionGuard_Authenticate_RememberLostConditionalWrite(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	oldCookie := loginWithRemember(t, fixture, user)
	series, _, _ := entity.DecodeRememberMeToken(oldCookie)
	hashBefore := store.tokens[series].Hash

	store.loseRecycle = true
	fixture.nextRequest(oldCookie)
	fixture.clock.Advance(90 * time.Second)
	guard := fixture.guard()

	authenticated, err := guard.Authenticate(context.Background())

	require.NoError(t, err)
	assert.Same(t, user, authenticated)
	assert.Equal(t, oldCookie, fixture.cookies.values["remember_web"])
	assert.Zero(t, fixture.cookies.sets)
	assert.Equal(t, hashBefore, store.tokens[series].Hash)
	assert.Equal(t, 0, store.recycled)
}

func TestSessionGuard_Authenticate_RememberRecycleFailureLeavesSessionEmpty(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	oldCookie := loginWithRemember(t, fixture, user)

	store.recycleErr = errors.New("db timeout")
	fixture.nextRequest(oldCookie)
	fixture.clock.Advance(90 * time.Second)
	guard := fixture.guard()

	_, err := guard.Authenticate(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.False(t, guard.IsAuthenticated())
	_, present := fixture.session.data["auth_web"]
	assert.False(t, present)
	assert.Equal(t, oldCookie, fixture.cookies.values["remember_web"])
}

func TestSessionGuard_Authenticate_RememberRegenerateFailureLeavesSessionEmpty(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	cookie := loginWithRemember(t, fixture, user)

	fixture.nextRequest(cookie)
	fixture.session.regenerateErr = errors.New("store unavailable")
	guard := fixture.guard()

	_, err := guard.Authenticate(context.Background())

	require.Error(t, err)
	assert.False(t, guard.IsAuthenticated())
	assert.Empty(t, fixture.session.data)
	assert.Equal(t, 0, store.recycled)
}

func TestSessionGuard_Authenticate_RememberExpired(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), newRememberStore()})
	cookie := loginWithRemember(t, fixture, user)

	fixture.nextRequest(cookie)
	fixture.clock.Advance(31 * 24 * time.Hour)

	_, err := fixture.guard().Authenticate(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.Empty(t, fixture.session.data)
}

func TestSessionGuard_Authenticate_RememberTampered(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	cookie := loginWithRemember(t, fixture, user)
	series, _, _ := entity.DecodeRememberMeToken(cookie)

	forged, err := entity.NewRememberMeToken(user.ID, "web", time.Hour, fixture.clock.Now())
	require.NoError(t, err)
	forged.Series = series
	forgedCookie, ok := forged.ReleaseValue()
	require.True(t, ok)

	for _, value := range []string{forgedCookie, "garbage", series} {
		fixture.nextRequest(value)
		_, err := fixture.guard().Authenticate(context.Background())
		require.Error(t, err, value)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized), value)
	}
}

func TestSessionGuard_Authenticate_RememberOtherGuard(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), newRememberStore()})
	cookie := loginWithRemember(t, fixture, user)

	fixture.nextRequest("")
	fixture.cookies.values["remember_admin"] = cookie
	guard := fixture.factory.SessionGuard("admin", fixture.session, fixture.cookies)

	_, err := guard.Authenticate(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestSessionGuard_Authenticate_RememberUnsupported(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider())
	fixture.cookies.values["remember_web"] = "c2VyaWVz.c2VjcmV0"

	ok, err := fixture.guard().Check(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionGuard_Logout_WithoutDeleter(t *testing.T) {
	user := newTestUser()
	users := mockProvider.NewMockUserProvider(t)
	creator := mockProvider.NewMockRememberMeTokenCreator(t)
	fixture := newGuardFixture(&rememberWithoutDeleteProvider{
		MockUserProvider:            users,
		MockRememberMeTokenFinder:   mockProvider.NewMockRememberMeTokenFinder(t),
		MockRememberMeTokenCreator:  creator,
		MockRememberMeTokenRecycler: mockProvider.NewMockRememberMeTokenRecycler(t),
	})

	users.EXPECT().CreateUserForGuard(user).
		Return(func(u *entity.User) (*provider.GuardUser, error) { return provider.NewGuardUser(u) }).
		Once()
	creator.EXPECT().CreateRememberMeToken(mock.Anything, mock.AnythingOfType("*entity.RememberMeToken")).
		Return(nil).
		Once()
	users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()

	cookie := loginWithRemember(t, fixture, user)
	require.NotEmpty(t, cookie)
	guard := fixture.guard()
	_, err := guard.Authenticate(context.Background())
	require.NoError(t, err)

	require.NoError(t, guard.Logout(context.Background()))

	assert.True(t, guard.IsLoggedOut())
	assert.False(t, guard.IsAuthenticated())
	assert.Nil(t, guard.User())
	_, hasKey := fixture.session.data["auth_web"]
	assert.False(t, hasKey)
	_, hasCookie := fixture.cookies.values["remember_web"]
	assert.False(t, hasCookie)
	assert.Equal(t, service.LoggedOut, fixture.sink.Last().Type)
	assert.Equal(t, user.ID.String(), fixture.sink.Last().UserID)
}

func TestSessionGuard_Logout_DeletesRememberToken(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	cookie := loginWithRemember(t, fixture, user)
	series, _, _ := entity.DecodeRememberMeToken(cookie)

	require.NoError(t, fixture.guard().Logout(context.Background()))

	assert.NotContains(t, store.tokens, series)
	assert.Equal(t, []string{series}, store.deleted)
}

func TestSessionGuard_Logout_DeleteFailureIsIgnored(t *testing.T) {
	user := newTestUser()
	store := newRememberStore()
	store.deleteErr = errors.New("timeout")
	fixture := newGuardFixture(&rememberingProvider{newLookupProvider(user), store})
	loginWithRemember(t, fixture, user)

	require.NoError(t, fixture.guard().Logout(context.Background()))
	_, hasCookie := fixture.cookies.values["remember_web"]
	assert.False(t, hasCookie)
}

func TestSessionGuard_GetUserOrFail(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(newLookupProvider(user))
	guard := fixture.guard()

	_, err := guard.GetUserOrFail()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))

	require.NoError(t, guard.Login(context.Background(), user, false))

	current, err := guard.GetUserOrFail()
	require.NoError(t, err)
	assert.Same(t, user, current)
}

func TestSessionGuard_EventsCarryRequestContext(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(newLookupProvider(user))
	ctx := deliverycontext.WithRequest(context.Background(), deliverycontext.NewRequest("req-42"))

	require.NoError(t, fixture.guard().Login(ctx, user, false))

	event := fixture.sink.Last()
	assert.Equal(t, "req-42", event.RequestID)
	assert.Equal(t, "web", event.Guard)
	assert.Equal(t, service.SessionAuthGroup, event.Group)
	assert.Equal(t, fixture.session.ID(), event.SessionID)
	assert.Equal(t, fixture.clock.Now(), event.OccurredAt)
}

func TestSessionGuard_RecordsPrincipalOnRequest(t *testing.T) {
	user := newTestUser()
	fixture := newGuardFixture(newLookupProvider(user))
	require.NoError(t, fixture.guard().Login(context.Background(), user, false))

	request := deliverycontext.NewRequest("req-7")
	ctx := deliverycontext.WithRequest(context.Background(), request)

	_, err := fixture.guard().Authenticate(ctx)
	require.NoError(t, err)

	guard, userID, ok := request.Principal()
	assert.True(t, ok)
	assert.Equal(t, "web", guard)
	assert.Equal(t, user.ID.String(), userID)
}

func TestSessionGuard_FailedAuthenticateRecordsNoPrincipal(t *testing.T) {
	fixture := newGuardFixture(newLookupProvider(newTestUser()))
	request := deliverycontext.NewRequest("req-8")
	ctx := deliverycontext.WithRequest(context.Background(), request)

	_, err := fixture.guard().Authenticate(ctx)
	require.Error(t, err)

	_, _, ok := request.Principal()
	assert.False(t, ok)
}
