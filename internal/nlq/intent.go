package nlq

import "strings"

// Intent is the closed set of question categories the agent understands.
type Intent string

const (
	IntentCheapest        Intent = "cheapest"
	IntentAveragePrice    Intent = "average_price"
	IntentHistoricalTrend Intent = "historical_trend"
	IntentSupplierLookup  Intent = "supplier_lookup"
	IntentProductList     Intent = "product_list"
	IntentRestrictions    Intent = "restrictions"
	IntentGeneralSearch   Intent = "general_search"
)

// intentRules are evaluated strictly in order; the first rule with any
// matching keyword wins. A question containing both "cheapest" and
// "average" therefore resolves to IntentCheapest. English keywords match
// the lowercased normalized text, Arabic keywords the original text.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentCheapest, []string{"cheapest", "lowest price", "best price", "أرخص"}},
	{IntentAveragePrice, []string{"average", "mean", "متوسط"}},
	{IntentHistoricalTrend, []string{"best time", "when to buy", "historical", "price trend", "أفضل وقت", "تاريخي"}},
	{IntentSupplierLookup, []string{"who sell", "supplier", "من يبيع", "المورد"}},
	{IntentProductList, []string{"list", "show", "what products", "available", "أظهر", "قائمة"}},
	{IntentRestrictions, []string{"restriction", "limit", "قيود", "حدود"}},
}

// ClassifyIntent selects exactly one intent for the question. It is total:
// when no keyword group matches, the catch-all IntentGeneralSearch is
// returned.
func ClassifyIntent(normalized, original string) Intent {
	lowered := strings.ToLower(normalized)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) || strings.Contains(original, keyword) {
				return rule.intent
			}
		}
	}
	return IntentGeneralSearch
}

var typeFacets = []struct {
	facet    string
	keywords []string
}{
	{"Fodder", []string{"fodder", "علف خشن"}},
	{"Concentrate", []string{"concentrate", "علف مركز"}},
	{"Additive", []string{"additive", "مضاف"}},
}

// ProductTypeFacet refines a product-type filter for listing questions.
// Returns the canonical type name or "" when the question names no type.
func ProductTypeFacet(normalized, original string) string {
	lowered := strings.ToLower(normalized)
	for _, rule := range typeFacets {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) || strings.Contains(original, keyword) {
				return rule.facet
			}
		}
	}
	return ""
}
