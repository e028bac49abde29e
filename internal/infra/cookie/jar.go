// Package cookie encrypts and authenticates the cookies a guard reads and writes.
package cookie

import (
	"crypto/sha256"
	"io"
	"net/http"
	"strings"
	"time"

	"gatehouse/config"
	"gatehouse/internal/domain/service"
	"gatehouse/internal/errors"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/hkdf"
)

const (
	hashKeySize  = 64
	blockKeySize = 32

	hashKeyInfo  = "gatehouse cookie signing"
	blockKeyInfo = "gatehouse cookie encryption"
)

// Factory holds the keys and attributes shared by every request's jar.
type Factory struct {
	codec    *securecookie.SecureCookie
	path     string
	domain   string
	secure   bool
	httpOnly bool
	sameSite http.SameSite
	now      func() time.Time
}

// NewFactory derives the signing and encryption keys from cookie.secret.
func NewFactory(cfg *config.Config) (*Factory, error) {
	if cfg.Cookie == nil || cfg.Cookie.Secret == "" {
		return nil, errors.New("cookie secret is missing")
	}

	hashKey, err := deriveKey(cfg.Cookie.Secret, hashKeyInfo, hashKeySize)
	if err != nil {
		return nil, err
	}

	blockKey, err := deriveKey(cfg.Cookie.Secret, blockKeyInfo, blockKeySize)
	if err != nil {
		return nil, err
	}

	codec := securecookie.New(hashKey, blockKey)
	// Lifetimes are enforced by the browser and by server-side expiry.
	codec.MaxAge(0)
	codec.SetSerializer(securecookie.NopEncoder{})

	return &Factory{
		codec:    codec,
		path:     cfg.Cookie.Path,
		domain:   cfg.Cookie.Domain,
		secure:   cfg.Cookie.Secure,
		httpOnly: cfg.Cookie.HTTPOnly,
		sameSite: parseSameSite(cfg.Cookie.SameSite),
		now:      time.Now,
	}, nil
}

func deriveKey(secret, info string, size int) ([]byte, error) {
	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, errors.Wrap(err, "failed to derive cookie key")
	}

	return key, nil
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Jar returns the cookie jar of one request.
func (f *Factory) Jar(w http.ResponseWriter, r *http.Request) *Jar {
	return &Jar{factory: f, w: w, r: r, pending: make(map[string]*string)}
}

// Jar implements service.CookieJar over one request and its response.
// Values written during the request are visible to later reads.
type Jar struct {
	factory *Factory
	w       http.ResponseWriter
	r       *http.Request

	// nil marks a cleared cookie
	pending map[string]*string
}

var _ service.CookieJar = (*Jar)(nil)

func (j *Jar) GetEncrypted(name string) (string, bool) {
	if value, ok := j.pending[name]; ok {
		if value == nil {
			return "", false
		}

		return *value, true
	}

	c, err := j.r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}

	var raw []byte
	if err := j.factory.codec.Decode(name, c.Value, &raw); err != nil {
		return "", false
	}

	return string(raw), true
}

// SetEncrypted writes the cookie. A zero maxAge makes it a browser-session cookie.
func (j *Jar) SetEncrypted(name, value string, maxAge time.Duration) error {
	encoded, err := j.factory.codec.Encode(name, []byte(value))
	if err != nil {
		return errors.Wrap(err, "failed to encode cookie")
	}

	c := j.base(name, encoded)
	if maxAge > 0 {
		c.MaxAge = int(maxAge / time.Second)
		c.Expires = j.factory.now().Add(maxAge).UTC()
	}
	http.SetCookie(j.w, c)

	j.pending[name] = &value

	return nil
}

func (j *Jar) Clear(name string) {
	c := j.base(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0).UTC()
	http.SetCookie(j.w, c)

	j.pending[name] = nil
}

// Has reports whether the request carried the cookie, readable or not.
func (j *Jar) Has(name string) bool {
	_, err := j.r.Cookie(name)

	return err == nil
}

func (j *Jar) base(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     j.factory.path,
		Domain:   j.factory.domain,
		Secure:   j.factory.secure,
		HttpOnly: j.factory.httpOnly,
		SameSite: j.factory.sameSite,
	}
}
