package ports

import (
	"context"
	"time"

	"github.com/savdo-crm/crm-api/internal/core/domain"
)

// OrderUpdate carries the mutable fields of an order.
type OrderUpdate struct {
	ClientName  *string
	Date        *time.Time
	Items       *[]domain.OrderItem
	TotalAmount *float64
}

// OrderRepository defines persistence operations for orders.
// List and ListRecent are ordered by order date descending.
type OrderRepository interface {
	List(ctx context.Context) ([]*domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, id string, upd OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
