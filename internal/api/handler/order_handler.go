package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/savdo-crm/crm-api/internal/api/metrics"
	"github.com/savdo-crm/crm-api/internal/core/ports"
	"github.com/savdo-crm/crm-api/pkg/format"
)

// OrderHandler handles HTTP requests for order records.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// List returns all orders, newest order date first.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}

// Recent returns the most recent orders. Defaults to the service limit
// when the query parameter is absent or not a positive integer.
//
// @Summary      Recent orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Maximum number of orders"
// @Success      200  {object}  listOrdersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/orders/recent [get]
func (h *OrderHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	orders, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderListResponse(orders))
}

// Get returns a single order by id.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Create adds a new order.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createOrderRequest  true  "Order details"
// @Success      201  {object}  orderResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		ClientName:  req.ClientName,
		Date:        req.Date,
		Items:       toOrderItems(req.Items),
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("orders", "create").Inc()
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Update applies a partial update to an order.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "Order id"
// @Param        body  body  updateOrderRequest  true  "Fields to change"
// @Success      200  {object}  orderResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	order, err := h.service.Update(c.Request().Context(), c.Param("id"), toOrderUpdate(req))
	if err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("orders", "update").Inc()
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete removes an order.
//
// @Summary      Delete an order
// @Tags         orders
// @Security     BearerAuth
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordWritesTotal.WithLabelValues("orders", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Export streams the full order list as a CSV attachment.
//
// @Summary      Export orders as CSV
// @Tags         orders
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      403  {object}  errorResponse
// @Router       /v1/orders/export [get]
func (h *OrderHandler) Export(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		lines := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			lines = append(lines, it.Name+" x"+strconv.Itoa(it.Quantity))
		}
		rows = append(rows, []string{
			o.ClientName,
			format.Date(o.Date),
			strings.Join(lines, "; "),
			format.Currency(o.TotalAmount),
		})
	}
	csv := format.CSV([]string{"client", "date", "items", "total"}, rows)

	metrics.ExportsTotal.WithLabelValues("orders").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+format.CSVFilename("orders", time.Now())+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
