package domain

import "errors"

// Record lookup misses.
var (
	ErrClientNotFound = errors.New("client not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrUserNotFound   = errors.New("user not found")
)

// Authentication failure categories. Exactly one of these is surfaced to
// the caller per failed attempt; anything else is reported generically.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedEmail     = errors.New("malformed email")
	ErrRateLimited        = errors.New("too many attempts")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
)

var (
	ErrUserExists  = errors.New("user already exists")
	ErrForbidden   = errors.New("access forbidden")
	ErrInvalidRole = errors.New("invalid role")
)

// ErrUnknownCollection is returned when a live subscription names a
// collection that is not exposed for watching.
var ErrUnknownCollection = errors.New("unknown collection")
