package impl

import (
	"context"
	"log/slog"

	"gatehouse/config"
	deliverycontext "gatehouse/internal/delivery/context"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/domain/provider"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// accessTokenService implements the AccessTokenUsecase interface.
type accessTokenService struct {
	tokens   provider.AccessTokenProvider
	settings config.AccessTokensConfig
	logger   *slog.Logger
}

// AccessTokenServiceParams holds dependencies for AccessTokenService, injected by Fx.
type AccessTokenServiceParams struct {
	fx.In

	Tokens provider.AccessTokenProvider
	Config *config.Config
	Logger *slog.Logger
}

// NewAccessTokenService is the constructor for accessTokenService.
func NewAccessTokenService(params AccessTokenServiceParams) usecase.AccessTokenUsecase {
	return &accessTokenService{
		tokens:   params.Tokens,
		settings: params.Config.Auth.AccessTokens,
		logger:   params.Logger,
	}
}

func (srv *accessTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue creates a token for user and releases its public value.
func (srv *accessTokenService) Issue(ctx context.Context, user *entity.User, input usecase.IssueAccessTokenInput) (*usecase.IssuedAccessToken, error) {
	expiresIn := input.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = srv.settings.DefaultExpiresIn
	}

	accessToken, err := srv.tokens.Create(ctx, user, input.Abilities, provider.CreateTokenOptions{
		Name:      input.Name,
		ExpiresIn: expiresIn,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	value, ok := accessToken.Release(srv.tokens.Codec())
	if !ok {
		return nil, errors.New("access token value already released")
	}

	srv.log(ctx).Info("Issued access token",
		slog.Any("user_id", user.ID),
		slog.Any("token_id", accessToken.Identifier),
		slog.Any("abilities", accessToken.Abilities),
	)

	return &usecase.IssuedAccessToken{Token: accessToken, Value: value}, nil
}

// List returns the tokens of user without their secrets.
func (srv *accessTokenService) List(ctx context.Context, user *entity.User) ([]*entity.AccessToken, error) {
	tokens, err := srv.tokens.All(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access tokens")
	}

	return tokens, nil
}

// Revoke deletes one of user's tokens.
func (srv *accessTokenService) Revoke(ctx context.Context, user *entity.User, id uuid.UUID) error {
	deleted, err := srv.tokens.Delete(ctx, user, id)
	if err != nil {
		srv.log(ctx).Error("Failed to revoke access token", slog.Any("error", err), slog.Any("token_id", id))

		return errors.Wrap(err, "failed to revoke access token")
	}

	if !deleted {
		return domainerrors.ErrTokenNotFound.WrapMessage("access token not found")
	}

	srv.log(ctx).Info("Revoked access token", slog.Any("user_id", user.ID), slog.Any("token_id", id))

	return nil
}
