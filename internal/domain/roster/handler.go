package roster

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
	manage := auth.RequireRole("attending")

	api.POST("/residents", h.CreateResident, manage)
	api.GET("/residents", h.ListResidents)
	api.GET("/residents/active", h.ListActiveResidents)
	api.PUT("/residents/:id", h.UpdateResident, manage)
	api.DELETE("/residents/:id", h.DeleteResident, manage)

	api.POST("/attendings", h.CreateAttending, manage)
	api.GET("/attendings", h.ListAttendings)
	api.GET("/attendings/active", h.ListActiveAttendings)
	api.PUT("/attendings/:id", h.UpdateAttending, manage)
	api.DELETE("/attendings/:id", h.DeleteAttending, manage)
}

func (h *Handler) CreateResident(c echo.Context) error {
	var r Resident
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r.IsActive = true
	r.CreatedBy = auth.UserEmailFromContext(c.Request().Context())
	if err := h.svc.CreateResident(c.Request().Context(), &r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListResidents(c echo.Context) error {
	filter := ListFilter{Hospital: c.QueryParam("hospital")}
	items, err := h.svc.ListResidents(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Resident{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListActiveResidents(c echo.Context) error {
	items, err := h.svc.ActiveResidents(c.Request().Context(), c.QueryParam("hospital"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Resident{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateResident(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid resident id")
	}
	var r Resident
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r.ID = id
	ok, err := h.svc.UpdateResident(c.Request().Context(), &r)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "resident not found")
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) DeleteResident(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid resident id")
	}
	ok, err := h.svc.DeleteResident(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "resident not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateAttending(c echo.Context) error {
	var a Attending
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.IsActive = true
	a.CreatedBy = auth.UserEmailFromContext(c.Request().Context())
	if err := h.svc.CreateAttending(c.Request().Context(), &a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAttendings(c echo.Context) error {
	filter := ListFilter{Hospital: c.QueryParam("hospital")}
	items, err := h.svc.ListAttendings(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Attending{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListActiveAttendings(c echo.Context) error {
	filter := ListFilter{Hospital: c.QueryParam("hospital"), ActiveOnly: true}
	items, err := h.svc.ListAttendings(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*Attending{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateAttending(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid attending id")
	}
	var a Attending
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.ID = id
	ok, err := h.svc.UpdateAttending(c.Request().Context(), &a)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "attending not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAttending(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid attending id")
	}
	ok, err := h.svc.DeleteAttending(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "attending not found")
	}
	return c.NoContent(http.StatusNoContent)
}
