package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deenanswers/qa-system/internal/core/ports"
)

// UserHandler handles user provisioning and administration routes.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Store handles POST /v1/users/store. Called by the front end after login;
// upserts the caller from the verified token claims.
//
// @Summary      Provision the caller from their token claims
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  createdResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/store [post]
func (h *UserHandler) Store(c echo.Context) error {
	id, err := h.service.Store(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createdResponse{ID: id})
}

// Me handles GET /v1/users/me. Anonymous or unprovisioned callers get a
// JSON null, never an error.
//
// @Summary      Resolve the caller to a user record
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.service.Current(c.Request().Context(), ctxSubject(c))
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Promote handles POST /v1/admin/users/:id/promote. Behind OptionalAuth:
// when no admin exists yet the first call needs no authorization.
func (h *UserHandler) Promote(c echo.Context) error {
	if err := h.service.PromoteToAdmin(c.Request().Context(), ctxSubject(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateRole handles PUT /v1/admin/users/:id/role.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateRole(c.Request().Context(), ctxSubject(c), c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Toggle handles POST /v1/admin/users/:id/toggle and returns the new flag.
func (h *UserHandler) Toggle(c echo.Context) error {
	active, err := h.service.ToggleStatus(c.Request().Context(), ctxSubject(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toggleStatusResponse{IsActive: active})
}

// List handles GET /v1/admin/users, newest first.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListAll(c.Request().Context(), ctxSubject(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}
