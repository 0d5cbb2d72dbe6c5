package ports

import (
	"context"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a profile.
// The password is hashed by the service; it is never stored.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UserService defines use-case operations for user profiles.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
