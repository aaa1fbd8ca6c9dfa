// Package catalog holds the static procedure and diagnosis catalog and the
// lookup logic over it. The catalog is loaded once at startup and never
// mutated; the "frequently used" overlay lives in the usage domain and is
// merged at response time.
package catalog

// ProcedureCode is an immutable catalog entry for a single CPT code.
type ProcedureCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsFavorite  bool   `json:"is_favorite"`
}

// Diagnosis is an immutable catalog entry mapping a diagnosis name to the
// CPT codes commonly billed for it. Codes may repeat across diagnoses.
type Diagnosis struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	CPTCodes []string `json:"cpt_codes"`
}
