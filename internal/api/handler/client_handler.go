package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/savdo-crm/crm-api/internal/api/metrics"
	"github.com/savdo-crm/crm-api/internal/core/ports"
	"github.com/savdo-crm/crm-api/pkg/format"
)

// ClientHandler handles HTTP requests for client records.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List returns all clients, optionally filtered by a search term.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "Search term matched against name, phone and address"
// @Success      200  {object}  listClientsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientListResponse(clients))
}

// Get returns a single client by id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create adds a new client.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createClientRequest  true  "Client details"
// @Success      201  {object}  clientResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
		Stores:  req.Stores,
	})
	if err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("clients", "create").Inc()
	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// Update applies a partial update to a client. Absent fields stay unchanged.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "Client id"
// @Param        body  body  updateClientRequest  true  "Fields to change"
// @Success      200  {object}  clientResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ClientUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
		Stores:  req.Stores,
	})
	if err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("clients", "update").Inc()
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete removes a client.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordWritesTotal.WithLabelValues("clients", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Export streams the full client list as a CSV attachment.
//
// @Summary      Export clients as CSV
// @Tags         clients
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      403  {object}  errorResponse
// @Router       /v1/clients/export [get]
func (h *ClientHandler) Export(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(clients))
	for _, cl := range clients {
		rows = append(rows, []string{
			cl.Name,
			format.Phone(cl.Phone),
			cl.Address,
			cl.Notes,
			strings.Join(cl.Stores, " "),
			format.Date(cl.CreatedAt),
		})
	}
	csv := format.CSV([]string{"name", "phone", "address", "notes", "stores", "created_at"}, rows)

	metrics.ExportsTotal.WithLabelValues("clients").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+format.CSVFilename("clients", time.Now())+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
