package impl

import (
	"context"
	"sync"
	"time"

	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/provider"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"
	mockProvider "gatehouse/internal/mocks/provider"

	"github.com/google/uuid"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fakeSession struct {
	id            string
	data          map[string]string
	regenerations int
	regenerateErr error
}

func newFakeSession() *fakeSession {
	return &fakeSession{id: uuid.NewString(), data: map[string]string{}}
}

func (s *fakeSession) ID() string { return s.id }

func (s *fakeSession) Get(key string) (string, bool) {
	value, ok := s.data[key]
	return value, ok
}

func (s *fakeSession) Put(key, value string) { s.data[key] = value }

func (s *fakeSession) Forget(key string) { delete(s.data, key) }

func (s *fakeSession) Regenerate() error {
	if s.regenerateErr != nil {
		return s.regenerateErr
	}
	s.id = uuid.NewString()
	s.regenerations++

	return nil
}

type fakeCookieJar struct {
	values  map[string]string
	maxAges map[string]time.Duration
	cleared []string
	sets    int
}

func newFakeCookieJar() *fakeCookieJar {
	return &fakeCookieJar{values: map[string]string{}, maxAges: map[string]time.Duration{}}
}

func (j *fakeCookieJar) GetEncrypted(name string) (string, bool) {
	value, ok := j.values[name]
	return value, ok
}

func (j *fakeCookieJar) SetEncrypted(name, value string, maxAge time.Duration) error {
	j.values[name] = value
	j.maxAges[name] = maxAge
	j.sets++

	return nil
}

func (j *fakeCookieJar) Clear(name string) {
	delete(j.values, name)
	j.cleared = append(j.cleared, name)
}

type recordingSink struct {
	mu     sync.Mutex
	events []service.AuthEvent
}

func (s *recordingSink) Emit(_ context.Context, event service.AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) Types() []service.AuthEventType {
	s.mu.Lock()
	defer s.mu.Unlock()

	types := make([]service.AuthEventType, 0, len(s.events))
	for _, event := range s.events {
		types = append(types, event.Type)
	}

	return types
}

func (s *recordingSink) Last() service.AuthEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.events[len(s.events)-1]
}

// lookupProvider implements only the required UserProvider methods.
type lookupProvider struct {
	users     map[uuid.UUID]*entity.User
	passwords map[string]string
	findCalls int
	findErr   error
}

func newLookupProvider(users ...*entity.User) *lookupProvider {
	p := &lookupProvider{users: map[uuid.UUID]*entity.User{}, passwords: map[string]string{}}
	for _, user := range users {
		p.users[user.ID] = user
		p.passwords[user.Email] = "secret-password"
	}

	return p
}

func (p *lookupProvider) CreateUserForGuard(user *entity.User) (*provider.GuardUser, error) {
	return provider.NewGuardUser(user)
}

func (p *lookupProvider) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	p.findCalls++
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if p.findErr != nil {
		return nil, p.findErr
	}

	return p.users[id], nil
}

func (p *lookupProvider) VerifyCredentials(ctx context.Context, uid, password string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	expected, ok := p.passwords[uid]
	if !ok || expected != password {
		return nil, nil
	}

	for _, user := range p.users {
		if user.Email == uid {
			return user, nil
		}
	}

	return nil, nil
}

// rememberStore keeps remember-me tokens by series and hands out copies, so
// a guard mutating its token does not touch the stored row.
type rememberStore struct {
	tokens      map[string]entity.RememberMeToken
	loseRecycle bool
	recycleErr  error
	recycled    int
	deleted     []string
	deleteErr   error
}

func newRememberStore() *rememberStore {
	return &rememberStore{tokens: map[string]entity.RememberMeToken{}}
}

func (s *rememberStore) FindRememberMeTokenBySeries(_ context.Context, series string) (*entity.RememberMeToken, error) {
	stored, ok := s.tokens[series]
	if !ok {
		return nil, nil
	}

	return &stored, nil
}

func (s *rememberStore) CreateRememberMeToken(_ context.Context, token *entity.RememberMeToken) error {
	s.tokens[token.Series] = *token
	return nil
}

func (s *rememberStore) RecycleRememberMeToken(_ context.Context, token *entity.RememberMeToken, previousUpdatedAt time.Time) (bool, error) {
	if s.recycleErr != nil {
		return false, s.recycleErr
	}

	stored, ok := s.tokens[token.Series]
	if !ok || s.loseRecycle || !stored.UpdatedAt.Equal(previousUpdatedAt) {
		return false, nil
	}

	s.tokens[token.Series] = *token
	s.recycled++

	return true, nil
}

func (s *rememberStore) DeleteRememberMeTokenBySeries(_ context.Context, series string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.tokens, series)
	s.deleted = append(s.deleted, series)

	return nil
}

// rememberingProvider supports every remember-me capability.
type rememberingProvider struct {
	*lookupProvider
	*rememberStore
}

// rememberWithoutDeleteProvider implements every remember-me capability but
// deletion.
type rememberWithoutDeleteProvider struct {
	*mockProvider.MockUserProvider
	*mockProvider.MockRememberMeTokenFinder
	*mockProvider.MockRememberMeTokenCreator
	*mockProvider.MockRememberMeTokenRecycler
}
