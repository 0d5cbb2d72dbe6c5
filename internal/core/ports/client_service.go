package ports

import (
	"context"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// CreateClientInput carries the fields accepted when creating a client.
type CreateClientInput struct {
	Name    string
	Phone   string
	Address string
	Notes   string
	Stores  []string
}

// ClientService defines use-case operations for clients.
type ClientService interface {
	List(ctx context.Context) ([]*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, upd ClientUpdate) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	// Search filters by case-insensitive substring over name, phone and
	// address. A blank term returns the full list without filtering.
	Search(ctx context.Context, term string) ([]*domain.Client, error)
}
