package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
	"github.com/savdo-crm/crm-api/pkg/format"
)

// LoginLimiter abstracts the per-account attempt throttle (Redis).
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}

// TokenDenylist abstracts token revocation (Redis).
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// ResetTokenStore abstracts single-use password-reset tokens (Redis).
type ResetTokenStore interface {
	Store(ctx context.Context, token, userID string) error
	Consume(ctx context.Context, token string) (string, error)
}

// AuthService implements login, per-request session resolution, logout,
// and the password-reset flow.
type AuthService struct {
	users     ports.UserRepository
	limiter   LoginLimiter
	denylist  TokenDenylist
	resets    ResetTokenStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	limiter LoginLimiter,
	denylist TokenDenylist,
	resets ResetTokenStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		limiter:   limiter,
		denylist:  denylist,
		resets:    resets,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Login verifies credentials and issues a token. Every failure maps to
// exactly one of the fixed categories: malformed-email is rejected before
// any backend call, rate-limited before the credential check, not-found
// and wrong-credential from the check itself.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if !format.ValidEmail(email) {
		return nil, domain.ErrMalformedEmail
	}

	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("rate limit check failed, proceeding")
	} else if !allowed {
		s.log.Warn().Str("email", email).Msg("login rate limited")
		return nil, domain.ErrRateLimited
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to reset rate limit counter")
	}

	session := s.sessionFor(user)
	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(session.Role)).Msg("login succeeded")
	return &ports.LoginResult{Token: token, Session: session}, nil
}

// Authenticate resolves a presented token to a live session: signature and
// expiry, then the revocation list, then the profile record. A credential
// whose profile no longer resolves is revoked on the spot so the broken
// session cannot be presented again.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	jti, _ := claims["jti"].(string)
	if jti != "" {
		revoked, err := s.denylist.IsRevoked(ctx, jti)
		if err != nil {
			s.log.Warn().Err(err).Msg("denylist check failed, proceeding")
		} else if revoked {
			return nil, domain.ErrTokenRevoked
		}
	}

	userID, _ := claims["sub"].(string)
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.revokeClaims(ctx, claims)
			s.log.Error().Str("user_id", userID).Msg("no profile for authenticated identity, session revoked")
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	return s.sessionFor(user), nil
}

// Logout revokes the presented token for its remaining lifetime. An
// already-expired or unparsable token needs no revocation.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	s.revokeClaims(ctx, claims)
	s.log.Info().Msg("logout, token revoked")
	return nil
}

// RequestPasswordReset issues a single-use reset token for the account.
// Token delivery is out of scope here; the token is logged for the
// operator to hand over.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !format.ValidEmail(email) {
		return domain.ErrMalformedEmail
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.resets.Store(ctx, token, user.ID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", user.ID).Str("reset_token", token).Msg("password reset requested")
	return nil
}

// ConfirmPasswordReset consumes a reset token and stores the new hash.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	userID, err := s.resets.Consume(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hashStr := string(hash)
	if _, err := s.users.Update(ctx, userID, ports.UserUpdate{PasswordHash: &hashStr}); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password reset confirmed")
	return nil
}

// sessionFor merges the identity and profile. A profile without a valid
// role is treated as the default role rather than rejected.
func (s *AuthService) sessionFor(user *domain.User) *domain.Session {
	role := user.Role
	if !domain.ValidRole(role) {
		role = domain.DefaultRole
	}
	return &domain.Session{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   role,
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	return claims, nil
}

// revokeClaims denylists the token's jti for whatever lifetime remains.
func (s *AuthService) revokeClaims(ctx context.Context, claims jwt.MapClaims) {
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return
	}
	ttl := s.tokenTTL
	if exp, ok := claims["exp"].(float64); ok {
		ttl = time.Unix(int64(exp), 0).Sub(s.now())
	}
	if err := s.denylist.Revoke(ctx, jti, ttl); err != nil {
		s.log.Warn().Err(err).Msg("failed to revoke token")
	}
}
