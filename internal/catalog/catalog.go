package catalog

import "strings"

// MaxSearchResults bounds the result size of a catalog search.
const MaxSearchResults = 20

// Catalog is the read-only procedure and diagnosis lookup table shared across
// the application. Safe for concurrent use because it is never mutated after
// construction.
type Catalog struct {
	procedures []ProcedureCode
	diagnoses  []Diagnosis
	byCode     map[string]ProcedureCode
}

// New builds a catalog from the given entries.
func New(procedures []ProcedureCode, diagnoses []Diagnosis) *Catalog {
	byCode := make(map[string]ProcedureCode, len(procedures))
	for _, p := range procedures {
		byCode[p.Code] = p
	}
	return &Catalog{
		procedures: procedures,
		diagnoses:  diagnoses,
		byCode:     byCode,
	}
}

// Procedures returns the full procedure catalog.
func (c *Catalog) Procedures() []ProcedureCode {
	return c.procedures
}

// Diagnoses returns the full diagnosis catalog.
func (c *Catalog) Diagnoses() []Diagnosis {
	return c.diagnoses
}

// Lookup returns the procedure entry for a code, if present.
func (c *Catalog) Lookup(code string) (ProcedureCode, bool) {
	p, ok := c.byCode[code]
	return p, ok
}

// CodesToProcedureCodes projects a code list onto the procedure catalog.
// An empty or nil list means "no filter active" and returns the full catalog.
// Codes absent from the catalog are skipped.
func (c *Catalog) CodesToProcedureCodes(codes []string) []ProcedureCode {
	if len(codes) == 0 {
		return c.procedures
	}
	result := make([]ProcedureCode, 0, len(codes))
	for _, code := range codes {
		if p, ok := c.byCode[code]; ok {
			result = append(result, p)
		}
	}
	return result
}

// SearchProcedureCodes matches the query case-insensitively against code,
// description, and category, in catalog order, capped at MaxSearchResults.
func (c *Catalog) SearchProcedureCodes(query string) []ProcedureCode {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []ProcedureCode
	for _, p := range c.procedures {
		if strings.Contains(strings.ToLower(p.Code), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			results = append(results, p)
			if len(results) >= MaxSearchResults {
				break
			}
		}
	}
	return results
}

// Categories returns the distinct procedure categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.procedures {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Favorites returns the procedure entries flagged as favorites.
func (c *Catalog) Favorites() []ProcedureCode {
	var favorites []ProcedureCode
	for _, p := range c.procedures {
		if p.IsFavorite {
			favorites = append(favorites, p)
		}
	}
	return favorites
}
