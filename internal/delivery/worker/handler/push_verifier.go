package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"gatehouse/config"
	"gatehouse/internal/domain/constants"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/pubsub"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/api/idtoken"
)

var errMissingPushToken = errors.New("missing push token")

// PushVerifier authenticates the sender of a push request.
type PushVerifier interface {
	Verify(req *http.Request) error
}

// NewPushVerifier picks the verifier for the configured provider:
// Google ID tokens for Google Pub/Sub outside development, HS256 tokens for
// the local publisher when a push secret is set, and nothing otherwise.
func NewPushVerifier(cfg *config.Config) PushVerifier {
	if cfg.PubSub == nil {
		return noopVerifier{}
	}

	switch cfg.PubSub.Provider {
	case constants.PubSubProviderGoogle:
		if cfg.Env.Env == constants.EnvDevelop {
			return noopVerifier{}
		}

		return &googleIDTokenVerifier{audience: cfg.PubSub.PushAudience, validate: idtoken.Validate}
	case constants.PubSubProviderLocal:
		if cfg.PubSub.PushSecret == "" {
			return noopVerifier{}
		}

		return &sharedSecretVerifier{secret: []byte(cfg.PubSub.PushSecret), audience: cfg.PubSub.LocalEndpoint}
	default:
		return noopVerifier{}
	}
}

type noopVerifier struct{}

func (noopVerifier) Verify(*http.Request) error {
	return nil
}

// sharedSecretVerifier checks tokens signed by the local publisher.
type sharedSecretVerifier struct {
	secret   []byte
	audience string
}

func (v *sharedSecretVerifier) Verify(req *http.Request) error {
	raw, err := pushToken(req)
	if err != nil {
		return err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(pubsub.PushTokenIssuer),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	_, err = jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return errors.Wrap(err, "invalid push token")
	}

	return nil
}

// googleIDTokenVerifier validates Google-signed OIDC tokens attached by push subscriptions.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
type googleIDTokenVerifier struct {
	audience string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func (v *googleIDTokenVerifier) Verify(req *http.Request) error {
	raw, err := pushToken(req)
	if err != nil {
		return err
	}

	audience := v.audience
	if audience == "" {
		// Without explicit configuration the audience is this endpoint's URL.
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := v.validate(req.Context(), raw, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

func pushToken(req *http.Request) (string, error) {
	scheme, raw, found := strings.Cut(req.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
		return "", errMissingPushToken
	}

	return strings.TrimSpace(raw), nil
}
