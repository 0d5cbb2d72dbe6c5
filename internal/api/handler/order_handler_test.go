package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

type stubOrderService struct {
	listFn   func(ctx context.Context) ([]*domain.Order, error)
	recentFn func(ctx context.Context, limit int) ([]*domain.Order, error)
	getFn    func(ctx context.Context, id string) (*domain.Order, error)
	createFn func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error)
	updateFn func(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubOrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.listFn(ctx)
}

func (s *stubOrderService) Recent(ctx context.Context, limit int) ([]*domain.Order, error) {
	return s.recentFn(ctx, limit)
}

func (s *stubOrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	return s.createFn(ctx, input)
}

func (s *stubOrderService) Update(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
	return s.updateFn(ctx, id, upd)
}

func (s *stubOrderService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestOrderHandler_Create(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
			if input.ClientName != "Aziz" || len(input.Items) != 1 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Items[0].Quantity != 3 {
				t.Fatalf("unexpected quantity: %d", input.Items[0].Quantity)
			}
			return &domain.Order{
				ID:          "o1",
				ClientName:  input.ClientName,
				Items:       input.Items,
				TotalAmount: input.TotalAmount,
			}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/orders",
		`{"client_name":"Aziz","items":[{"name":"Olma","quantity":3,"price":12000}],"total_amount":36000}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	display, _ := resp["total_display"].(string)
	if !strings.HasSuffix(display, "сўм") {
		t.Fatalf("expected currency display, got %q", display)
	}
}

func TestOrderHandler_Create_EmptyItems(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/orders",
		`{"client_name":"Aziz","items":[],"total_amount":0}`)
	err := h.Create(c)
	if err == nil {
		t.Fatalf("expected validation error for empty items")
	}
}

func TestOrderHandler_Recent_PassesLimit(t *testing.T) {
	stub := &stubOrderService{
		recentFn: func(ctx context.Context, limit int) ([]*domain.Order, error) {
			if limit != 5 {
				t.Fatalf("expected limit 5, got %d", limit)
			}
			return nil, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/orders/recent?limit=5", "")
	if err := h.Recent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Recent_BadLimitDefaults(t *testing.T) {
	stub := &stubOrderService{
		recentFn: func(ctx context.Context, limit int) ([]*domain.Order, error) {
			if limit != 0 {
				t.Fatalf("expected limit 0 for unparseable input, got %d", limit)
			}
			return nil, nil
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/v1/orders/recent?limit=abc", "")
	if err := h.Recent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestOrderHandler_Update_ItemsPointer(t *testing.T) {
	stub := &stubOrderService{
		updateFn: func(ctx context.Context, id string, upd ports.OrderUpdate) (*domain.Order, error) {
			if upd.Items == nil || len(*upd.Items) != 2 {
				t.Fatalf("expected two items, got %+v", upd.Items)
			}
			if upd.ClientName != nil {
				t.Fatalf("client name must stay nil")
			}
			return &domain.Order{ID: id, Items: *upd.Items}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/v1/orders/o1",
		`{"items":[{"name":"Olma","quantity":1,"price":100},{"name":"Nok","quantity":2,"price":200}]}`)
	c.SetParamNames("id")
	c.SetParamValues("o1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Delete_NotFound(t *testing.T) {
	stub := &stubOrderService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrOrderNotFound
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodDelete, "/v1/orders/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Delete(c)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderHandler_Export(t *testing.T) {
	stub := &stubOrderService{
		listFn: func(ctx context.Context) ([]*domain.Order, error) {
			return []*domain.Order{
				{
					ClientName: "Aziz",
					Date:       time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
					Items: []domain.OrderItem{
						{Name: "Olma", Quantity: 3, Price: 12000},
						{Name: "Nok", Quantity: 1, Price: 8000},
					},
					TotalAmount: 44000,
				},
			}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/orders/export", "")
	if err := h.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "client,date,items,total") {
		t.Fatalf("unexpected header row: %q", body)
	}
	if !strings.Contains(body, "Olma x3; Nok x1") {
		t.Fatalf("expected item summary, got %q", body)
	}
	if !strings.Contains(body, "30.08.2026") {
		t.Fatalf("expected formatted date, got %q", body)
	}
}
