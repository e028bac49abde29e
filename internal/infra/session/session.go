package session

import (
	"encoding/base64"
	"maps"

	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"

	"github.com/gorilla/securecookie"
)

const idLength = 32

// RequestSession is the session of one request. Writes stay in memory until
// the Manager commits them.
type RequestSession struct {
	id       string
	data     map[string]string
	fresh    bool
	dirty    bool
	obsolete []string
}

var _ service.Session = (*RequestSession)(nil)

func newRequestSession(id string, data map[string]string, fresh bool) *RequestSession {
	if data == nil {
		data = make(map[string]string)
	}

	return &RequestSession{id: id, data: data, fresh: fresh}
}

func (s *RequestSession) ID() string {
	return s.id
}

func (s *RequestSession) Get(key string) (string, bool) {
	value, ok := s.data[key]

	return value, ok
}

func (s *RequestSession) Put(key, value string) {
	if current, ok := s.data[key]; ok && current == value {
		return
	}

	s.data[key] = value
	s.dirty = true
}

func (s *RequestSession) Forget(key string) {
	if _, ok := s.data[key]; !ok {
		return
	}

	delete(s.data, key)
	s.dirty = true
}

// Regenerate keeps the data under a new id. The previous id is deleted from
// the store on commit.
func (s *RequestSession) Regenerate() error {
	id, err := newID()
	if err != nil {
		return err
	}

	if !s.fresh {
		s.obsolete = append(s.obsolete, s.id)
	}

	s.id = id
	s.fresh = true
	s.dirty = true

	return nil
}

// Data returns a copy of the session values.
func (s *RequestSession) Data() map[string]string {
	return maps.Clone(s.data)
}

// IsDirty reports whether the session changed during the request.
func (s *RequestSession) IsDirty() bool {
	return s.dirty
}

// newID returns 32 random bytes, base64url encoded without padding.
func newID() (string, error) {
	raw := securecookie.GenerateRandomKey(idLength)
	if raw == nil {
		return "", errors.New("failed to generate session id")
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func validID(id string) bool {
	raw, err := base64.RawURLEncoding.DecodeString(id)

	return err == nil && len(raw) == idLength
}
