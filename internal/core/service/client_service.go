package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
		Stores:  input.Stores,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.log.Info().Str("client_id", created.ID).Str("name", created.Name).Msg("client created")
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, id string, upd ports.ClientUpdate) (*domain.Client, error) {
	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("client_id", id).Msg("client updated")
	return updated, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

// Search fetches the full collection and filters it here: the backend has
// no text index, which bounds this to collections that fit in memory. A
// blank term returns the unfiltered list without a filter pass.
func (s *ClientService) Search(ctx context.Context, term string) ([]*domain.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return clients, nil
	}

	lower := strings.ToLower(term)
	matched := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.Address), lower) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
