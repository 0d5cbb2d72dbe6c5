package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/savdo-crm/crm-api/internal/api/metrics"
	"github.com/savdo-crm/crm-api/internal/core/domain"
	"github.com/savdo-crm/crm-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns all user profiles.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Get returns a single user profile by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create adds a new user profile. An empty role defaults to viewer.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createUserRequest  true  "User details"
// @Success      201  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("users", "create").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update applies a partial update to a user profile.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateUserRequest  true  "Fields to change"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	upd := ports.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		upd.Role = &role
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), upd)
	if err != nil {
		return err
	}

	metrics.RecordWritesTotal.WithLabelValues("users", "update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes a user profile.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.RecordWritesTotal.WithLabelValues("users", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
