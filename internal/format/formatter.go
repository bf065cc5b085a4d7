package format

import (
	"fmt"
	"strings"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/lang"
)

// headers maps the compiler's template keys to localized section headers.
// Keys not present here are rendered literally so provider-supplied
// templates still produce readable output.
var headers = map[string][2]string{
	"cheapest_suppliers": {"Here are the cheapest suppliers:", "أرخص الموردين:"},
	"average_prices":     {"Average prices by country:", "متوسط الأسعار:"},
	"best_months":        {"Best months to buy (lowest prices):", "أفضل وقت للشراء:"},
	"suppliers":          {"Here are the suppliers:", "الموردين:"},
	"products":           {"Available products:", "المنتجات:"},
	"restrictions":       {"Product restrictions:", "القيود:"},
	"results":            {"Search results:", "النتائج:"},
}

var statLabels = map[string][2]string{
	"avg": {"Avg", "المتوسط"},
	"min": {"Min", "الحد الأدنى"},
	"max": {"Max", "الحد الأقصى"},
}

// Formatter renders query result rows as a numbered bilingual answer.
type Formatter struct {
	dict *lang.Dictionary
}

func New(dict *lang.Dictionary) *Formatter {
	return &Formatter{dict: dict}
}

// NoResults is the exact empty-result sentence for the locale.
func (f *Formatter) NoResults(loc lang.Locale) string {
	if loc == lang.LocaleArabic {
		return "لم يتم العثور على نتائج"
	}
	return "No results found"
}

// ExecError renders a query execution failure.
func (f *Formatter) ExecError(loc lang.Locale, detail string) string {
	if loc == lang.LocaleArabic {
		return "خطأ في قاعدة البيانات: " + detail
	}
	return "Database error: " + detail
}

// GenericError renders an unexpected processing failure without leaking
// internals to the caller.
func (f *Formatter) GenericError(loc lang.Locale) string {
	if loc == lang.LocaleArabic {
		return "حدث خطأ أثناء معالجة السؤال"
	}
	return "An error occurred while processing your question"
}

// Format renders rows under the localized header for the template key. An
// empty row set yields the NoResults sentence and nothing else.
func (f *Formatter) Format(loc lang.Locale, templateKey string, rows []map[string]any) string {
	if len(rows) == 0 {
		return f.NoResults(loc)
	}

	var b strings.Builder
	b.WriteString(f.header(loc, templateKey))
	b.WriteString("\n")

	for i, row := range rows {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d. ", i+1))
		b.WriteString(strings.Join(f.renderRow(loc, row), " "))
	}
	return b.String()
}

func (f *Formatter) header(loc lang.Locale, key string) string {
	h, ok := headers[key]
	if !ok {
		return key
	}
	if loc == lang.LocaleArabic {
		return h[1]
	}
	return h[0]
}

// renderRow assembles the parts of one answer line in a fixed field order,
// skipping fields the row does not carry.
func (f *Formatter) renderRow(loc lang.Locale, row map[string]any) []string {
	var parts []string

	if s := stringField(row, "supplier"); s != "" {
		parts = append(parts, s)
	}
	if s := stringField(row, "product_name"); s != "" {
		parts = append(parts, s)
	}
	if s := stringField(row, "supplier_country"); s != "" {
		parts = append(parts, "("+f.dict.CountryDisplay(s, loc)+")")
	}
	// A zero cost_per_kg marks an unpriced catalogue row, so the unit price
	// is suppressed. Aggregate stats below always render, a genuine zero
	// average is information.
	if v, ok := floatField(row, "cost_per_kg"); ok && v != 0 {
		parts = append(parts, fmt.Sprintf("- %s %.2f/kg", currency(row), v))
	}
	if v, ok := floatField(row, "avg_price"); ok {
		parts = append(parts, fmt.Sprintf("%s: %s %.2f", f.statLabel(loc, "avg"), currency(row), v))
	}
	if v, ok := floatField(row, "min_price"); ok {
		parts = append(parts, fmt.Sprintf("%s: %.2f", f.statLabel(loc, "min"), v))
	}
	if v, ok := floatField(row, "max_price"); ok {
		parts = append(parts, fmt.Sprintf("%s: %.2f", f.statLabel(loc, "max"), v))
	}
	if s := stringField(row, "month"); s != "" {
		parts = append([]string{s}, parts...)
	}
	if s := stringField(row, "type"); s != "" {
		parts = append(parts, "["+f.dict.TypeDisplay(s, loc)+"]")
	}
	if s := stringField(row, "species"); s != "" {
		parts = append(parts, "Species: "+s)
	}
	if v, ok := floatField(row, "max_perc_feed"); ok && v != 0 {
		parts = append(parts, fmt.Sprintf("Max feed %%: %s", trimFloat(v)))
	}
	if s := stringField(row, "supplier_email"); s != "" {
		parts = append(parts, "📧 "+s)
	}
	if s := stringField(row, "supplier_phone"); s != "" {
		parts = append(parts, "📞 "+s)
	}
	return parts
}

func (f *Formatter) statLabel(loc lang.Locale, key string) string {
	if loc == lang.LocaleArabic {
		return statLabels[key][1]
	}
	return statLabels[key][0]
}

func currency(row map[string]any) string {
	if s := stringField(row, "cost_currency"); s != "" {
		return s
	}
	return "USD"
}

func stringField(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(v)
	}
}

func floatField(row map[string]any, key string) (float64, bool) {
	v, ok := row[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// trimFloat prints whole numbers without a fractional part, 30 not 30.00.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
