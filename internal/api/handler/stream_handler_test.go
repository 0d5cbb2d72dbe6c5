package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/savdo-crm/crm-api/internal/api/middleware"
	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

type stubSubscription struct {
	unsubscribed bool
}

func (s *stubSubscription) Unsubscribe() { s.unsubscribed = true }

type stubWatcher struct {
	sub     *stubSubscription
	watchFn func(ctx context.Context, collection string, fn ports.SnapshotFunc) (ports.Subscription, error)
}

func (w *stubWatcher) Watch(ctx context.Context, collection string, fn ports.SnapshotFunc) (ports.Subscription, error) {
	return w.watchFn(ctx, collection, fn)
}

func streamContext(t *testing.T, path string, role domain.Role) (echo.Context, *httptest.ResponseRecorder, context.CancelFunc) {
	t.Helper()
	e := echo.New()
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionKey, &domain.Session{UserID: "u1", Role: role})
	return c, rec, cancel
}

func TestStreamHandler_DeliversSnapshot(t *testing.T) {
	sub := &stubSubscription{}
	watcher := &stubWatcher{
		sub: sub,
		watchFn: func(ctx context.Context, collection string, fn ports.SnapshotFunc) (ports.Subscription, error) {
			if collection != "clients" {
				t.Fatalf("unexpected collection %q", collection)
			}
			fn([]map[string]any{{"_id": "c1", "name": "Aziz"}})
			return sub, nil
		},
	}
	h := NewStreamHandler(watcher, zerolog.Nop())

	c, rec, cancel := streamContext(t, "/v1/stream/clients", domain.RoleViewer)
	c.SetParamNames("collection")
	c.SetParamValues("clients")

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	if err := h.Stream(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "event: snapshot") {
		t.Fatalf("expected snapshot event, got %q", body)
	}
	if !strings.Contains(body, `"name":"Aziz"`) {
		t.Fatalf("expected snapshot payload, got %q", body)
	}
	if !sub.unsubscribed {
		t.Fatalf("subscription must be released on disconnect")
	}
}

func TestStreamHandler_UnknownCollection(t *testing.T) {
	watcher := &stubWatcher{
		watchFn: func(ctx context.Context, collection string, fn ports.SnapshotFunc) (ports.Subscription, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewStreamHandler(watcher, zerolog.Nop())

	c, _, cancel := streamContext(t, "/v1/stream/stores", domain.RoleOwner)
	defer cancel()
	c.SetParamNames("collection")
	c.SetParamValues("stores")

	err := h.Stream(c)
	if !errors.Is(err, domain.ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestStreamHandler_ForbidsUsersForViewer(t *testing.T) {
	watcher := &stubWatcher{
		watchFn: func(ctx context.Context, collection string, fn ports.SnapshotFunc) (ports.Subscription, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewStreamHandler(watcher, zerolog.Nop())

	c, _, cancel := streamContext(t, "/v1/stream/users", domain.RoleViewer)
	defer cancel()
	c.SetParamNames("collection")
	c.SetParamValues("users")

	err := h.Stream(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestStreamHandler_NoSession(t *testing.T) {
	h := NewStreamHandler(&stubWatcher{}, zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/stream/clients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("collection")
	c.SetParamValues("clients")

	err := h.Stream(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
