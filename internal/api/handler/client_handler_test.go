package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

type stubClientService struct {
	listFn   func(ctx context.Context) ([]*domain.Client, error)
	getFn    func(ctx context.Context, id string) (*domain.Client, error)
	createFn func(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error)
	updateFn func(ctx context.Context, id string, upd ports.ClientUpdate) (*domain.Client, error)
	deleteFn func(ctx context.Context, id string) error
	searchFn func(ctx context.Context, term string) ([]*domain.Client, error)
}

func (s *stubClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.listFn(ctx)
}

func (s *stubClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.getFn(ctx, id)
}

func (s *stubClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	return s.createFn(ctx, input)
}

func (s *stubClientService) Update(ctx context.Context, id string, upd ports.ClientUpdate) (*domain.Client, error) {
	return s.updateFn(ctx, id, upd)
}

func (s *stubClientService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubClientService) Search(ctx context.Context, term string) ([]*domain.Client, error) {
	return s.searchFn(ctx, term)
}

func TestClientHandler_List_PassesSearchTerm(t *testing.T) {
	stub := &stubClientService{
		searchFn: func(ctx context.Context, term string) ([]*domain.Client, error) {
			if term != "aziz" {
				t.Fatalf("expected search term aziz, got %q", term)
			}
			return []*domain.Client{{ID: "c1", Name: "Aziz", Phone: "998901234567"}}, nil
		},
	}
	h := NewClientHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/clients?q=aziz", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(1) {
		t.Fatalf("expected total 1, got %v", resp["total"])
	}
	data := resp["data"].([]any)
	first := data[0].(map[string]any)
	if first["phone_display"] != "+998 90 123 45 67" {
		t.Fatalf("unexpected phone_display: %v", first["phone_display"])
	}
}

func TestClientHandler_Get_NotFound(t *testing.T) {
	stub := &stubClientService{
		getFn: func(ctx context.Context, id string) (*domain.Client, error) {
			return nil, domain.ErrClientNotFound
		},
	}
	h := NewClientHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/v1/clients/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientHandler_Create(t *testing.T) {
	stub := &stubClientService{
		createFn: func(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
			if input.Name != "Aziz" || len(input.Stores) != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Client{
				ID:        "c1",
				Name:      input.Name,
				Phone:     input.Phone,
				Stores:    input.Stores,
				CreatedAt: time.Now().UTC(),
				UpdatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewClientHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/clients",
		`{"name":"Aziz","phone":"998901234567","stores":["s1","s2"]}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestClientHandler_Create_MissingName(t *testing.T) {
	stub := &stubClientService{
		createFn: func(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewClientHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/clients", `{"phone":"998901234567"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestClientHandler_Update_PartialFields(t *testing.T) {
	stub := &stubClientService{
		updateFn: func(ctx context.Context, id string, upd ports.ClientUpdate) (*domain.Client, error) {
			if upd.Name == nil || *upd.Name != "Renamed" {
				t.Fatalf("expected name update, got %+v", upd)
			}
			if upd.Phone != nil {
				t.Fatalf("phone must stay nil on partial update")
			}
			return &domain.Client{ID: id, Name: *upd.Name}, nil
		},
	}
	h := NewClientHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/v1/clients/c1", `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestClientHandler_Delete(t *testing.T) {
	stub := &stubClientService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "c1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewClientHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/v1/clients/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestClientHandler_Export(t *testing.T) {
	stub := &stubClientService{
		listFn: func(ctx context.Context) ([]*domain.Client, error) {
			return []*domain.Client{
				{
					Name:      "Aziz",
					Phone:     "998901234567",
					Address:   "Tashkent, Chilonzor",
					Stores:    []string{"s1"},
					CreatedAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	h := NewClientHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/clients/export", "")
	if err := h.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "clients_") {
		t.Fatalf("expected dated filename, got %q", cd)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "name,phone,address,notes,stores,created_at") {
		t.Fatalf("unexpected header row: %q", body)
	}
	// The address contains a comma, so it must be quoted.
	if !strings.Contains(body, `"Tashkent, Chilonzor"`) {
		t.Fatalf("expected quoted address, got %q", body)
	}
	if !strings.Contains(body, "+998 90 123 45 67") {
		t.Fatalf("expected formatted phone, got %q", body)
	}
	if !strings.Contains(body, "31.08.2026") {
		t.Fatalf("expected formatted date, got %q", body)
	}
}
