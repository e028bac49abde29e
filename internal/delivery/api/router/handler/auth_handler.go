package handler

import (
	"log/slog"
	"net/http"

	"gatehouse/internal/delivery/api/middleware"
	"gatehouse/internal/delivery/api/response"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var errNoSessionGuard = errors.New("no session guard on request")

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler holds the session login endpoints.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the request body for a password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// Register creates an account. It does not log the user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// Login verifies the credentials and starts an authenticated session.
func (h *AuthHandler) Login(c echo.Context) error {
	guard, ok := middleware.GetSessionGuard(c)
	if !ok {
		return errNoSessionGuard
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := guard.Attempt(c.Request().Context(), req.Email, req.Password, req.Remember)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// Logout ends the session and forgets the remember-me token.
func (h *AuthHandler) Logout(c echo.Context) error {
	guard, ok := middleware.GetSessionGuard(c)
	if !ok {
		return errNoSessionGuard
	}

	if err := guard.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Me returns the user of the session. RequireSession has authenticated it.
func (h *AuthHandler) Me(c echo.Context) error {
	guard, ok := middleware.GetSessionGuard(c)
	if !ok {
		return errNoSessionGuard
	}

	user, err := guard.GetUserOrFail()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":         newUserResponse(user),
		"via_remember": guard.ViaRemember(),
	})
}

// Check reports whether the request is authenticated without failing.
func (h *AuthHandler) Check(c echo.Context) error {
	guard, ok := middleware.GetSessionGuard(c)
	if !ok {
		return errNoSessionGuard
	}

	authenticated, err := guard.Check(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"authenticated": authenticated})
}
