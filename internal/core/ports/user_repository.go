package ports

import (
	"context"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// UserUpdate carries the mutable profile fields. PasswordHash is set only
// by the password-reset flow.
type UserUpdate struct {
	Name         *string
	Email        *string
	Role         *domain.Role
	PasswordHash *string
}

// UserRepository defines persistence operations for user profiles.
// List is ordered by creation time descending.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
