package ports

import (
	"context"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// LoginResult is returned on a successful credential check: the signed
// token plus the merged identity + profile session payload.
type LoginResult struct {
	Token   string
	Session *domain.Session
}

// AuthService owns the session lifecycle: credential checks, per-request
// session resolution, revocation, and the password-reset flow.
type AuthService interface {
	// Login verifies credentials. Failures are classified into the fixed
	// error categories before they reach the caller.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Authenticate resolves a presented token to a live session. A valid
	// token whose profile no longer resolves is revoked before the error
	// is returned, so no half-authenticated state can persist.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)

	// Logout revokes the presented token for its remaining lifetime.
	Logout(ctx context.Context, token string) error

	// RequestPasswordReset issues a short-lived single-use reset token for
	// the account with the given email.
	RequestPasswordReset(ctx context.Context, email string) error

	// ConfirmPasswordReset consumes a reset token and stores the new
	// password hash.
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}
