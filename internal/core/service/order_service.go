package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

const defaultRecentLimit = 10

type OrderService struct {
	repo ports.OrderRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// Recent returns the newest limit orders by date. A non-positive limit
// falls back to the dashboard default.
func (s *OrderService) Recent(ctx context.Context, limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		ClientName:  input.ClientName,
		Date:        input.Date,
		Items:       input.Items,
		TotalAmount: input.TotalAmount,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.log.Info().Str("order_id", created.ID).Str("client_name", created.ClientName).Msg("order created")
	return created, nil
}

func (s *OrderService) Update(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("order_id", id).Msg("order updated")
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("order_id", id).Msg("order deleted")
	return nil
}
