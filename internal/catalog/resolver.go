package catalog

import "strings"

// matcher is one strategy in the diagnosis resolution chain. It returns the
// resolved code list and whether it matched; a non-match hands off to the
// next strategy.
type matcher interface {
	match(c *Catalog, query string) ([]string, bool)
}

// exactMatcher matches the query case-insensitively against a diagnosis name
// and returns that diagnosis's code list verbatim, order and duplicates
// preserved.
type exactMatcher struct{}

func (exactMatcher) match(c *Catalog, query string) ([]string, bool) {
	for _, d := range c.diagnoses {
		if strings.EqualFold(d.Name, query) {
			return d.CPTCodes, true
		}
	}
	return nil, false
}

// partialMatcher collects every diagnosis whose name contains the query,
// whose category contains the query, or whose name is itself contained in
// the query. The last case handles free text like a full clinical sentence
// that mentions a known diagnosis. Matching code lists are unioned with
// duplicates removed; per-diagnosis ordering is not meaningful here.
type partialMatcher struct{}

func (partialMatcher) match(c *Catalog, query string) ([]string, bool) {
	q := strings.ToLower(query)

	seen := make(map[string]bool)
	var codes []string
	matched := false

	for _, d := range c.diagnoses {
		name := strings.ToLower(d.Name)
		category := strings.ToLower(d.Category)
		if !strings.Contains(name, q) && !strings.Contains(category, q) && !strings.Contains(q, name) {
			continue
		}
		matched = true
		for _, code := range d.CPTCodes {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}

	if !matched {
		return nil, false
	}
	return codes, true
}

var resolutionChain = []matcher{
	exactMatcher{},
	partialMatcher{},
}

// ResolveCodesForDiagnosis maps free-text diagnosis input to CPT codes.
// Blank input returns nil, signalling that no diagnosis filter applies and
// the caller should fall back to favorites or frequently used codes. An
// exact name match wins and returns that diagnosis's codes verbatim;
// otherwise partial matches are unioned. No match at all returns nil.
func (c *Catalog) ResolveCodesForDiagnosis(diagnosisText string) []string {
	query := strings.TrimSpace(diagnosisText)
	if query == "" {
		return nil
	}

	for _, m := range resolutionChain {
		if codes, ok := m.match(c, query); ok {
			return codes
		}
	}
	return nil
}
