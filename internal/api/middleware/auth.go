package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// SessionKey is the echo context key the resolved session is stored under.
const SessionKey = "session"

// SessionResolver resolves a bearer token to a live session. A token whose
// profile no longer exists must be revoked by the resolver before it
// returns the error.
type SessionResolver interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Auth validates the bearer token, resolves it to a profile-backed
// session, and injects the session into the request context. Requests
// without a resolvable session never reach the handler.
func Auth(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := BearerToken(c)
			if err != nil {
				return err
			}

			session, err := resolver.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(SessionKey, session)
			return next(c)
		}
	}
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

// SessionFromContext returns the session injected by Auth, or nil when
// the middleware did not run.
func SessionFromContext(c echo.Context) *domain.Session {
	session, _ := c.Get(SessionKey).(*domain.Session)
	return session
}
