// Package handler contains the HTTP handlers of the ops server.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"textura/internal/delivery/http/response"
	"textura/internal/usecase"
)

// AuthHandler exposes the auth engine to local tooling.
type AuthHandler struct {
	auth   usecase.AuthUsecase
	reset  usecase.PasswordResetUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, reset usecase.PasswordResetUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		reset:  reset,
		logger: logger,
	}
}

// CredentialsRequest is the body of sign-in and sign-up.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateEmailRequest is the body of an email change.
type UpdateEmailRequest struct {
	NewEmail        string `json:"newEmail" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
}

// PasswordResetRequest is the body of a reset request. A blank email is rejected by the usecase.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// StateResponse is the authenticated state as seen by the engine.
type StateResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
}

func (h *AuthHandler) state() StateResponse {
	userID, ok := h.auth.CurrentUserID()

	return StateResponse{Authenticated: ok, UserID: userID}
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing or invalid fields")
	}

	return nil
}

// GetState returns the current authenticated state.
func (h *AuthHandler) GetState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.state())
}

// SignIn handles the sign-in request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.auth.SignIn(c.Request().Context(), req.Email, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.state())
}

// SignUp handles the registration request. The state stays unauthenticated while confirmation is pending.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.auth.SignUp(c.Request().Context(), req.Email, req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.state())
}

// SignOut handles the sign-out request.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.auth.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.state())
}

// UpdateEmail handles the email change request.
func (h *AuthHandler) UpdateEmail(c echo.Context) error {
	var req UpdateEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.auth.UpdateEmail(c.Request().Context(), req.NewEmail, req.CurrentPassword); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.state())
}

// DeleteAccount handles the account deletion request.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	if err := h.auth.DeleteAccount(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SendPasswordReset handles the password reset request.
func (h *AuthHandler) SendPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.reset.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, map[string]bool{"sent": true})
}
