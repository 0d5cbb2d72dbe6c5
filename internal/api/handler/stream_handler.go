package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/savdo-crm/crm-api/internal/api/metrics"
	"github.com/savdo-crm/crm-api/internal/api/middleware"
	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

// viewPermission maps a watchable collection to the permission required to
// read it live.
func viewPermission(collection string) (domain.Permission, bool) {
	switch collection {
	case "clients":
		return domain.PermViewClient, true
	case "orders":
		return domain.PermViewOrder, true
	case "users":
		return domain.PermViewUser, true
	}
	return "", false
}

// StreamHandler serves live collection snapshots over Server-Sent Events.
// Each event carries the full collection, newest first, so a consumer can
// always replace its local copy wholesale.
type StreamHandler struct {
	watcher ports.CollectionWatcher
	log     zerolog.Logger
}

func NewStreamHandler(watcher ports.CollectionWatcher, log zerolog.Logger) *StreamHandler {
	return &StreamHandler{watcher: watcher, log: log}
}

// Stream handles GET /v1/stream/:collection.
//
// The subscription is released when the client disconnects; the gauge
// tracks how many are open per collection.
//
// @Summary      Subscribe to live collection snapshots
// @Tags         stream
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        collection  path  string  true  "Collection name (clients, orders or users)"
// @Success      200  {string}  string
// @Failure      404  {object}  errorResponse
// @Router       /v1/stream/{collection} [get]
func (h *StreamHandler) Stream(c echo.Context) error {
	collection := c.Param("collection")

	session := middleware.SessionFromContext(c)
	if session == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	perm, ok := viewPermission(collection)
	if !ok {
		return domain.ErrUnknownCollection
	}
	if !domain.HasPermission(session.Role, perm) {
		return domain.ErrForbidden
	}

	ctx := c.Request().Context()

	// Buffer one snapshot; a newer one always supersedes an undelivered
	// older one. The watcher invokes the callback from a single goroutine.
	snapshots := make(chan []map[string]any, 1)
	sub, err := h.watcher.Watch(ctx, collection, func(records []map[string]any) {
		select {
		case snapshots <- records:
		default:
			select {
			case <-snapshots:
			default:
			}
			snapshots <- records
		}
	})
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	metrics.ActiveSubscriptions.WithLabelValues(collection).Inc()
	defer metrics.ActiveSubscriptions.WithLabelValues(collection).Dec()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	for {
		select {
		case <-ctx.Done():
			return nil
		case records := <-snapshots:
			payload, err := json.Marshal(records)
			if err != nil {
				h.log.Error().Err(err).Str("collection", collection).Msg("snapshot marshal failed")
				continue
			}
			if _, err := fmt.Fprintf(res, "event: snapshot\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
