package catalog

import (
	"strings"
	"testing"
)

func TestSearchProcedureCodes_MatchesCodeDescriptionCategory(t *testing.T) {
	cat := testCatalog()

	byCode := cat.SearchProcedureCodes("21141")
	if len(byCode) != 1 || byCode[0].Code != "21141" {
		t.Errorf("search by code: expected single 21141 entry, got %v", byCode)
	}

	byDescription := cat.SearchProcedureCodes("mandibular")
	if len(byDescription) != 1 || byDescription[0].Code != "21461" {
		t.Errorf("search by description: expected 21461, got %v", byDescription)
	}

	byCategory := cat.SearchProcedureCodes("orthognathic")
	if len(byCategory) != 1 || byCategory[0].Code != "21141" {
		t.Errorf("search by category: expected 21141, got %v", byCategory)
	}
}

func TestSearchProcedureCodes_CaseInsensitive(t *testing.T) {
	cat := testCatalog()

	got := cat.SearchProcedureCodes("LEFORT")
	if len(got) != 1 || got[0].Code != "21141" {
		t.Errorf("expected 21141, got %v", got)
	}
}

func TestSearchProcedureCodes_CapsResults(t *testing.T) {
	var procedures []ProcedureCode
	for i := 0; i < 50; i++ {
		procedures = append(procedures, ProcedureCode{
			Code:        "2" + strings.Repeat("1", 4),
			Description: "osteotomy variant",
			Category:    "Orthognathic Surgery",
		})
	}
	cat := New(procedures, nil)

	got := cat.SearchProcedureCodes("osteotomy")
	if len(got) != MaxSearchResults {
		t.Errorf("expected results capped at %d, got %d", MaxSearchResults, len(got))
	}
}

func TestSearchProcedureCodes_BlankQuery(t *testing.T) {
	cat := testCatalog()

	if got := cat.SearchProcedureCodes("   "); got != nil {
		t.Errorf("expected nil for blank query, got %v", got)
	}
}

func TestCategories_DistinctInCatalogOrder(t *testing.T) {
	cat := testCatalog()

	got := cat.Categories()
	want := []string{"Orthognathic Surgery", "Facial Trauma"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestFavorites(t *testing.T) {
	cat := testCatalog()

	got := cat.Favorites()
	if len(got) != 1 || got[0].Code != "21141" {
		t.Errorf("expected single favorite 21141, got %v", got)
	}
}

func TestDefaultCatalog_CodesResolve(t *testing.T) {
	cat := Default()

	// Every code referenced by a diagnosis should exist in the procedure
	// catalog so the dashboard never renders an unknown code.
	for _, d := range cat.Diagnoses() {
		for _, code := range d.CPTCodes {
			if _, ok := cat.Lookup(code); !ok {
				t.Errorf("diagnosis %s references unknown code %s", d.Name, code)
			}
		}
	}
}

func TestDefaultCatalog_LeFortResolution(t *testing.T) {
	cat := Default()

	got := cat.ResolveCodesForDiagnosis("lefort i fracture")
	want := []string{"21421", "21422", "21423"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
