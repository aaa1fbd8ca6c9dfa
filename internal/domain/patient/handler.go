package patient

import (
	"errors"
	"net/http"

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
	g.POST("/patients", h.Create)
	g.GET("/patients", h.List)
	g.GET("/patients/archived", h.ListArchived)
	g.POST("/patients/auto-archive", h.AutoArchive)
	g.GET("/patients/:mrn", h.Get)
	g.PUT("/patients/:mrn", h.Update)
	g.DELETE("/patients/:mrn", h.Delete)
	g.POST("/patients/:mrn/comments", h.AddComment)
	g.PATCH("/patients/:mrn/checklist", h.UpdateChecklist)
	g.POST("/patients/:mrn/send-to-or", h.SendToOR)
	g.POST("/patients/:mrn/mark-complete", h.MarkComplete)
	g.POST("/patients/:mrn/archive", h.Archive)
	g.POST("/patients/:mrn/restore", h.Restore)
}

func (h *Handler) Create(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	actor := actorEmail(c)
	if err := h.svc.Create(c.Request().Context(), &p, actor); err != nil {
		if errors.Is(err, ErrDuplicateMRN) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) List(c echo.Context) error {
	patients, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list patients")
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) ListArchived(c echo.Context) error {
	patients, err := h.svc.ListArchived(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list archived patients")
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("mrn"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	p.MRN = c.Param("mrn")
	updated, err := h.svc.Update(c.Request().Context(), &p, actorEmail(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("mrn")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete patient")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "patient deleted"})
}

type commentRequest struct {
	CommentText string `json:"comment_text"`
}

func (h *Handler) AddComment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	actor := actorEmail(c)
	name := auth.UserNameFromContext(c.Request().Context())
	comment, err := h.svc.AddComment(c.Request().Context(), c.Param("mrn"), req.CommentText, actor, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, comment)
}

type checklistRequest struct {
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
}

func (h *Handler) UpdateChecklist(c echo.Context) error {
	var req checklistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	err := h.svc.SetChecklistItem(c.Request().Context(), c.Param("mrn"), req.Item, req.Checked, actorEmail(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "checklist updated"})
}

func (h *Handler) SendToOR(c echo.Context) error {
	p, err := h.svc.SendToOR(c.Request().Context(), c.Param("mrn"), actorEmail(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update patient")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) MarkComplete(c echo.Context) error {
	p, err := h.svc.MarkComplete(c.Request().Context(), c.Param("mrn"), actorEmail(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update patient")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"patient":               p,
		"auto_archive_in_hours": h.svc.AutoArchiveDelayHours(),
	})
}

func (h *Handler) Archive(c echo.Context) error {
	p, err := h.svc.Archive(c.Request().Context(), c.Param("mrn"), actorEmail(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to archive patient")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Restore(c echo.Context) error {
	p, err := h.svc.Restore(c.Request().Context(), c.Param("mrn"), actorEmail(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "archived patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to restore patient")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) AutoArchive(c echo.Context) error {
	count, err := h.svc.AutoArchive(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "auto-archive failed")
	}
	return c.JSON(http.StatusOK, map[string]int{"archived_count": count})
}

func actorEmail(c echo.Context) string {
	return auth.UserEmailFromContext(c.Request().Context())
}
