package service

import (
	"context"
	"strconv"
	"time"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. They preserve
// insertion order reversed on List, mirroring the created-at-descending
// contract of the real repositories.

type stubClientRepo struct {
	clients []*domain.Client
	nextID  int
	listErr error
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Client, len(r.clients))
	for i, c := range r.clients {
		out[len(r.clients)-1-i] = c
	}
	return out, nil
}

func (r *stubClientRepo) GetByID(_ context.Context, id string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.nextID++
	c.ID = "client-" + strconv.Itoa(r.nextID)
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	r.clients = append(r.clients, c)
	return c, nil
}

func (r *stubClientRepo) Update(ctx context.Context, id string, upd ports.ClientUpdate) (*domain.Client, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	if upd.Notes != nil {
		c.Notes = *upd.Notes
	}
	if upd.Stores != nil {
		c.Stores = *upd.Stores
	}
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return domain.ErrClientNotFound
}

type stubOrderRepo struct {
	orders []*domain.Order
	nextID int
}

func (r *stubOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	out := make([]*domain.Order, len(r.orders))
	for i, o := range r.orders {
		out[len(r.orders)-1-i] = o
	}
	return out, nil
}

func (r *stubOrderRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Order, error) {
	all, _ := r.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.nextID++
	o.ID = "order-" + strconv.Itoa(r.nextID)
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	r.orders = append(r.orders, o)
	return o, nil
}

func (r *stubOrderRepo) Update(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.ClientName != nil {
		o.ClientName = *upd.ClientName
	}
	if upd.Date != nil {
		o.Date = *upd.Date
	}
	if upd.Items != nil {
		o.Items = *upd.Items
	}
	if upd.TotalAmount != nil {
		o.TotalAmount = *upd.TotalAmount
	}
	o.UpdatedAt = time.Now().UTC()
	return o, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

type stubUserRepo struct {
	users  []*domain.User
	nextID int
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, len(r.users))
	for i, u := range r.users {
		out[len(r.users)-1-i] = u
	}
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	u.ID = "user-" + strconv.Itoa(r.nextID)
	u.CreatedAt = time.Now().UTC()
	r.users = append(r.users, u)
	return u, nil
}

func (r *stubUserRepo) Update(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	u.UpdatedAt = time.Now().UTC()
	return u, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// Auth collaborators.

type stubLimiter struct {
	denied bool
	resets int
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) { return !l.denied, nil }
func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

type stubDenylist struct {
	revoked map[string]bool
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]bool)}
}

func (d *stubDenylist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	d.revoked[jti] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return d.revoked[jti], nil
}

type stubResets struct {
	tokens map[string]string
}

func newStubResets() *stubResets {
	return &stubResets{tokens: make(map[string]string)}
}

func (s *stubResets) Store(_ context.Context, token, userID string) error {
	s.tokens[token] = userID
	return nil
}

func (s *stubResets) Consume(_ context.Context, token string) (string, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrResetTokenInvalid
	}
	delete(s.tokens, token)
	return userID, nil
}
