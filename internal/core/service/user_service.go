package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create hashes the password and stores the profile. An empty role gets
// the default; an unknown role is rejected outright.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.DefaultRole
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	if upd.Role != nil && !domain.ValidRole(*upd.Role) {
		return nil, domain.ErrInvalidRole
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
