package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"malformed email", domain.ErrMalformedEmail, http.StatusBadRequest},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests},
		{"token revoked", domain.ErrTokenRevoked, http.StatusUnauthorized},
		{"profile missing", domain.ErrProfileNotFound, http.StatusUnauthorized},
		{"reset token invalid", domain.ErrResetTokenInvalid, http.StatusBadRequest},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"unknown collection", domain.ErrUnknownCollection, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Fatalf("expected an error message")
			}
		})
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "name is required"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "name is required" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestHTTPErrorHandler_RevokedSessionMessage(t *testing.T) {
	_, msg := renderError(t, domain.ErrProfileNotFound)
	if msg != "session no longer valid" {
		t.Fatalf("unexpected message %q", msg)
	}
}
