package auth

import (
	"context"
	"log/slog"
	"time"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	"gatehouse/internal/domain/provider"
	"gatehouse/internal/domain/repository"
	"gatehouse/internal/domain/token"
	"gatehouse/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accessTokenProvider implements provider.AccessTokenProvider on top of the repository.
type accessTokenProvider struct {
	tokens   repository.AccessTokenRepository
	codec    token.Codec
	settings config.AccessTokensConfig
	now      func() time.Time
	logger   *slog.Logger
}

// AccessTokenProviderParams holds dependencies for the access token provider, injected by Fx.
type AccessTokenProviderParams struct {
	fx.In

	Tokens repository.AccessTokenRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewAccessTokenProvider is the constructor for accessTokenProvider.
func NewAccessTokenProvider(params AccessTokenProviderParams) provider.AccessTokenProvider {
	return newAccessTokenProvider(params, time.Now)
}

func newAccessTokenProvider(params AccessTokenProviderParams, now func() time.Time) *accessTokenProvider {
	settings := params.Config.Auth.AccessTokens

	return &accessTokenProvider{
		tokens:   params.Tokens,
		codec:    token.NewCodec(settings.Prefix, settings.Delimiter).WithIdentifierValidator(isUUID),
		settings: settings,
		now:      now,
		logger:   params.Logger,
	}
}

func isUUID(value string) bool {
	return uuid.Validate(value) == nil
}

func (p *accessTokenProvider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// Codec returns the codec public token values are encoded with.
func (p *accessTokenProvider) Codec() token.Codec {
	return p.codec
}

// Create issues and persists a token for user.
func (p *accessTokenProvider) Create(ctx context.Context, user *entity.User, abilities []string, opts provider.CreateTokenOptions) (*entity.AccessToken, error) {
	accessToken, err := entity.NewAccessToken(user.ID, entity.AccessTokenOptions{
		Type:       p.settings.Type,
		Name:       opts.Name,
		Abilities:  abilities,
		ExpiresIn:  opts.ExpiresIn,
		SecretSize: p.settings.SecretSize,
	}, p.now())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := p.tokens.Create(ctx, accessToken); err != nil {
		return nil, errors.Wrap(err, "failed to store access token")
	}

	return accessToken, nil
}

// Verify resolves a public token value. Unknown, mismatching and expired
// tokens all yield nil, nil.
func (p *accessTokenProvider) Verify(ctx context.Context, value string) (*entity.AccessToken, error) {
	// 1. Decode without touching storage
	decoded, ok := p.codec.Decode(value)
	if !ok {
		return nil, nil
	}

	id, err := uuid.Parse(decoded.Identifier)
	if err != nil {
		return nil, nil
	}

	// 2. Load and compare
	accessToken, err := p.tokens.FindByID(ctx, p.settings.Type, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccessTokenNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find access token")
	}

	if !accessToken.Verify(decoded.Secret) {
		return nil, nil
	}

	// 3. Reject expired tokens, optionally removing them
	now := p.now()
	if accessToken.IsExpired(now) {
		if p.settings.PurgeExpired {
			p.purge(ctx, accessToken)
		}

		return nil, nil
	}

	// 4. Record usage
	accessToken.MarkUsed(now)
	if err := p.tokens.TouchLastUsed(ctx, accessToken.Identifier, now.UTC()); err != nil {
		return nil, errors.Wrap(err, "failed to record access token usage")
	}

	return accessToken, nil
}

func (p *accessTokenProvider) purge(ctx context.Context, accessToken *entity.AccessToken) {
	if _, err := p.tokens.Delete(ctx, accessToken.Type, accessToken.TokenableID, accessToken.Identifier); err != nil {
		p.log(ctx).Warn("Failed to purge expired access token",
			slog.Any("token_id", accessToken.Identifier),
			slog.Any("error", err),
		)
	}
}

// All lists the tokens of user.
func (p *accessTokenProvider) All(ctx context.Context, user *entity.User) ([]*entity.AccessToken, error) {
	tokens, err := p.tokens.ListByTokenable(ctx, p.settings.Type, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access tokens")
	}

	return tokens, nil
}

// Find returns nil, nil when id does not belong to user.
func (p *accessTokenProvider) Find(ctx context.Context, user *entity.User, id uuid.UUID) (*entity.AccessToken, error) {
	accessToken, err := p.tokens.FindByID(ctx, p.settings.Type, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccessTokenNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find access token")
	}

	if accessToken.TokenableID != user.ID {
		return nil, nil
	}

	return accessToken, nil
}

// Delete removes one of user's tokens and reports whether it existed.
func (p *accessTokenProvider) Delete(ctx context.Context, user *entity.User, id uuid.UUID) (bool, error) {
	deleted, err := p.tokens.Delete(ctx, p.settings.Type, user.ID, id)
	if err != nil {
		return false, errors.Wrap(err, "failed to delete access token")
	}

	return deleted > 0, nil
}
