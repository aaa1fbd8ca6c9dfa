package notification

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/orbook/orbook/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/notifications", h.List)
	api.GET("/notifications/unread", h.Unread)
	api.PATCH("/notifications/mark-all-read", h.MarkAllRead)
	api.PATCH("/notifications/:id/read", h.MarkRead)
	api.DELETE("/notifications/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	email := auth.UserEmailFromContext(c.Request().Context())
	items, err := h.svc.List(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Notification{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Unread(c echo.Context) error {
	email := auth.UserEmailFromContext(c.Request().Context())
	items, err := h.svc.Unread(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Notification{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}
	email := auth.UserEmailFromContext(c.Request().Context())
	ok, err := h.svc.MarkRead(c.Request().Context(), id, email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "read"})
}

func (h *Handler) MarkAllRead(c echo.Context) error {
	email := auth.UserEmailFromContext(c.Request().Context())
	count, err := h.svc.MarkAllRead(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]int{"marked_read": count})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}
	email := auth.UserEmailFromContext(c.Request().Context())
	ok, err := h.svc.Delete(c.Request().Context(), id, email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	return c.NoContent(http.StatusNoContent)
}
