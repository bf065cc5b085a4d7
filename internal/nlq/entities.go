package nlq

import (
	"strings"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/lang"
)

// Entities carries the query filters extracted from free text. Empty fields
// mean "no filter"; values are always canonical dictionary entries, never
// raw user text.
type Entities struct {
	// Product is the canonical lowercase English product term.
	Product string
	// Country is the canonical display name, e.g. "UAE" or "Saudi Arabia".
	Country string
}

// ExtractEntities scans the normalized question for at most one known
// product and one known country. English terms are tried first in priority
// order; if nothing hits, the Arabic dictionary is matched against the
// original text and mapped to its canonical English value.
func ExtractEntities(dict *lang.Dictionary, normalized, original string) Entities {
	return Entities{
		Product: extractProduct(dict, normalized, original),
		Country: extractCountry(dict, normalized, original),
	}
}

func extractProduct(dict *lang.Dictionary, normalized, original string) string {
	lowered := strings.ToLower(normalized)
	for _, term := range dict.ProductPriority() {
		if strings.Contains(lowered, term) {
			return term
		}
	}
	for _, term := range dict.ArabicProducts() {
		if strings.Contains(original, term.Text) {
			return strings.ToLower(term.Canonical)
		}
	}
	return ""
}

func extractCountry(dict *lang.Dictionary, normalized, original string) string {
	lowered := strings.ToLower(normalized)
	for _, term := range dict.CountryKeywords() {
		if strings.Contains(lowered, term.Text) {
			return term.Canonical
		}
	}
	for _, term := range dict.ArabicCountries() {
		if strings.Contains(original, term.Text) {
			return term.Canonical
		}
	}
	return ""
}
