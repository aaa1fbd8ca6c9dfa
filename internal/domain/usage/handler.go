package usage

import (
	"net/http"
	"strconv"

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
	api.GET("/usage/frequently-used-cpt", h.FrequentCPTCodes)
	api.GET("/usage/frequently-used-diagnoses", h.FrequentDiagnoses)
}

func limitParam(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return limit
}

func (h *Handler) FrequentCPTCodes(c echo.Context) error {
	email := auth.UserEmailFromContext(c.Request().Context())
	items, err := h.svc.FrequentCPTCodes(c.Request().Context(), email, limitParam(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

type frequentDiagnosis struct {
	Diagnosis string `json:"diagnosis"`
}

func (h *Handler) FrequentDiagnoses(c echo.Context) error {
	email := auth.UserEmailFromContext(c.Request().Context())
	values, err := h.svc.FrequentDiagnoses(c.Request().Context(), email, limitParam(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	items := make([]frequentDiagnosis, 0, len(values))
	for _, v := range values {
		items = append(items, frequentDiagnosis{Diagnosis: v})
	}
	return c.JSON(http.StatusOK, items)
}
