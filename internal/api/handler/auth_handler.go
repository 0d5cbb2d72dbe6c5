package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savdo-crm/crm-api/internal/api/metrics"
	"github.com/savdo-crm/crm-api/internal/api/middleware"
	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for the session lifecycle.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies credentials and returns a token plus the session payload.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:   result.Token,
		Session: toSessionResponse(result.Session),
	})
}

// loginResult classifies a login failure for the logins_total metric.
func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "wrong_credential"
	case errors.Is(err, domain.ErrMalformedEmail):
		return "malformed_email"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate_limited"
	default:
		return "error"
	}
}

// Logout revokes the presented token for its remaining lifetime.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, err := middleware.BearerToken(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the session resolved by the auth middleware.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// RequestPasswordReset issues a short-lived single-use reset token. The
// response is 204 whether or not the account exists, so the endpoint does
// not leak which emails are registered.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Param        body  body  resetPasswordRequest  true  "Account email"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Router       /v1/auth/reset-password [post]
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ConfirmPasswordReset consumes a reset token and stores the new password.
//
// @Summary      Confirm a password reset
// @Tags         auth
// @Accept       json
// @Param        body  body  confirmResetRequest  true  "Reset token and new password"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Router       /v1/auth/reset-password/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req confirmResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ConfirmPasswordReset(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
