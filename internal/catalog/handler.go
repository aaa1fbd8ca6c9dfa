package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	cat *Catalog
}

func NewHandler(cat *Catalog) *Handler {
	return &Handler{cat: cat}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/cpt-codes/search", h.SearchCodes)
	api.GET("/cpt-codes/categories", h.ListCategories)
	api.GET("/cpt-codes/favorites", h.ListFavorites)
	api.GET("/diagnoses", h.ListDiagnoses)
	api.GET("/diagnoses/resolve", h.ResolveDiagnosis)
}

// SearchCodes searches the procedure catalog by code, description, or
// category. Queries shorter than two characters are rejected to keep
// autocomplete responses small.
func (h *Handler) SearchCodes(c echo.Context) error {
	query := c.QueryParam("query")
	if len(query) < 2 {
		return echo.NewHTTPError(http.StatusBadRequest, "query must be at least 2 characters")
	}
	return c.JSON(http.StatusOK, h.cat.SearchProcedureCodes(query))
}

func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cat.Categories())
}

func (h *Handler) ListFavorites(c echo.Context) error {
	favorites := h.cat.Favorites()
	if favorites == nil {
		favorites = []ProcedureCode{}
	}
	return c.JSON(http.StatusOK, favorites)
}

func (h *Handler) ListDiagnoses(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cat.Diagnoses())
}

// resolveResponse carries the resolved codes alongside the full procedure
// entries so the dashboard can render descriptions without a second lookup.
type resolveResponse struct {
	Diagnosis  string          `json:"diagnosis"`
	Codes      []string        `json:"codes"`
	Procedures []ProcedureCode `json:"procedures"`
}

// ResolveDiagnosis maps free-text diagnosis input to procedure codes. When
// nothing resolves, codes is null and procedures falls back to the full
// catalog so the caller can show a browse-all view.
func (h *Handler) ResolveDiagnosis(c echo.Context) error {
	diagnosis := c.QueryParam("diagnosis")
	codes := h.cat.ResolveCodesForDiagnosis(diagnosis)
	return c.JSON(http.StatusOK, resolveResponse{
		Diagnosis:  diagnosis,
		Codes:      codes,
		Procedures: h.cat.CodesToProcedureCodes(codes),
	})
}
