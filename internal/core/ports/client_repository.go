package ports

import (
	"context"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// ClientUpdate carries the mutable fields of a client. Nil pointers mean
// "leave unchanged" so a partial update never clobbers absent fields.
type ClientUpdate struct {
	Name    *string
	Phone   *string
	Address *string
	Notes   *string
	Stores  *[]string
}

// ClientRepository defines persistence operations for clients.
// List is ordered by creation time descending.
type ClientRepository interface {
	List(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, upd ClientUpdate) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
