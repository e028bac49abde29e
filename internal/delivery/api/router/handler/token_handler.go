package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gatehouse/internal/delivery/api/middleware"
	"gatehouse/internal/delivery/api/response"
	"gatehouse/internal/domain/entity"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var errNoAccessTokenGuard = errors.New("no access token guard on request")

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.AccessTokenUsecase
	Logger  *slog.Logger
}

// TokenHandler manages access tokens and serves the token-authenticated API.
type TokenHandler struct {
	tokenUC usecase.AccessTokenUsecase
	logger  *slog.Logger
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// IssueTokenRequest represents the request body for issuing an access token
type IssueTokenRequest struct {
	Name             *string  `json:"name" validate:"omitempty,max=255"`
	Abilities        []string `json:"abilities" validate:"omitempty,dive,required,max=255"`
	ExpiresInSeconds int64    `json:"expires_in_seconds" validate:"gte=0"`
}

// Issue creates a token for the session user and returns its value once.
func (h *TokenHandler) Issue(c echo.Context) error {
	guard, ok := middleware.GetSessionGuard(c)
	if !ok {
		return errNoSessionGuard
	}

	user, err := guard.GetUserOrFail()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid access token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	issued, err := h.tokenUC.Issue(c.Request().Context(), user, usecase.IssueAccessTokenInput{
		Name:      req.Name,
		Abilities: req.Abilities,
		ExpiresIn: time.Duration(req.ExpiresInSeconds) * time.Second,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, IssuedAccessTokenResponse{
		AccessTokenResponse: newAccessTokenResponse(issued.Token),
		Token:               issued.Value,
	})
}

// List returns the caller's tokens. The caller is the token owner on
// token-authenticated routes and the session user otherwise.
func (h *TokenHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tokens, err := h.tokenUC.List(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]AccessTokenResponse, 0, len(tokens))
	for _, accessToken := range tokens {
		out = append(out, newAccessTokenResponse(accessToken))
	}

	return response.Success(c, http.StatusOK, out)
}

func currentUser(c echo.Context) (*entity.User, error) {
	if guard, ok := middleware.GetAccessTokenGuard(c); ok {
		return guard.GetUserOrFail()
	}

	if guard, ok := middleware.GetSessionGuard(c); ok {
		return guard.GetUserOrFail()
	}

	return nil, domainerrors.ErrUnauthorized.WrapMessage("no guard on request")
}

// Revoke deletes one of the session user's tokens.
func (h *TokenHandler) Revoke(c echo.Context) error {
	guard, ok := middleware.GetSessionGuard(c)
	if !ok {
		return errNoSessionGuard
	}

	user, err := guard.GetUserOrFail()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrTokenNotFound.WrapMessage("invalid token id"))
	}

	if err := h.tokenUC.Revoke(c.Request().Context(), user, tokenID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Me returns the token owner and the abilities of the presented token.
func (h *TokenHandler) Me(c echo.Context) error {
	guard, ok := middleware.GetAccessTokenGuard(c)
	if !ok {
		return errNoAccessTokenGuard
	}

	user, err := guard.GetUserOrFail()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":  newUserResponse(user),
		"token": newAccessTokenResponse(guard.CurrentToken()),
	})
}

// CheckAbility answers whether the token grants the ability in the path.
func (h *TokenHandler) CheckAbility(c echo.Context) error {
	guard, ok := middleware.GetAccessTokenGuard(c)
	if !ok {
		return errNoAccessTokenGuard
	}

	ability := c.Param("ability")
	if err := guard.CurrentToken().Authorize(ability); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"ability": ability,
		"allowed": true,
	})
}
