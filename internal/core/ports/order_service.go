package ports

import (
	"context"
	"time"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// CreateOrderInput carries the fields accepted when creating an order.
// ClientName is a denormalized copy, not a reference.
type CreateOrderInput struct {
	ClientName  string
	Date        time.Time
	Items       []domain.OrderItem
	TotalAmount float64
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	List(ctx context.Context) ([]*domain.Order, error)
	Recent(ctx context.Context, limit int) ([]*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	Update(ctx context.Context, id string, upd OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
