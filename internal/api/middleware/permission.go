package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// RequirePermission enforces the role table for a single permission.
// It must run after Auth; a request without a session is rejected.
func RequirePermission(permission domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !domain.HasPermission(session.Role, permission) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
