package schedule

import (
	"errors"
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

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/schedules", h.Create)
	g.GET("/schedules", h.List)
	g.GET("/schedules/:id", h.Get)
	g.PUT("/schedules/:id", h.Update)
	g.DELETE("/schedules/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var sch Schedule
	if err := c.Bind(&sch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ctx := c.Request().Context()
	actor := auth.UserEmailFromContext(ctx)
	actorName := auth.UserNameFromContext(ctx)
	if err := h.svc.Create(ctx, &sch, actor, actorName); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sch)
}

func (h *Handler) List(c echo.Context) error {
	filter := ListFilter{
		IncludeArchived: c.QueryParam("include_archived") == "true",
		AddonOnly:       c.QueryParam("addon") == "true",
		Date:            c.QueryParam("date"),
		PatientMRN:      c.QueryParam("patient_mrn"),
	}
	items, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list schedules")
	}
	if items == nil {
		items = []*Schedule{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}
	sch, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
	}
	return c.JSON(http.StatusOK, sch)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}
	var sch Schedule
	if err := c.Bind(&sch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sch.ID = id
	if err := h.svc.Update(c.Request().Context(), &sch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "schedule updated"})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "schedule not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete schedule")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "schedule deleted"})
}
