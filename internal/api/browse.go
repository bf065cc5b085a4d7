package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type statsResponse struct {
	TotalProducts     int64            `json:"total_products"`
	ActiveProducts    int64            `json:"active_products"`
	UniqueSuppliers   int64            `json:"unique_suppliers"`
	TotalRestrictions int64            `json:"total_restrictions"`
	ProductsByType    map[string]int64 `json:"products_by_type"`
	ProductsByCountry map[string]int64 `json:"products_by_country"`
}

func handleStats(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Store == nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, "STORE_NOT_CONFIGURED", "dataset store is not configured", true, nil)
		return
	}

	stats, err := deps.Store.Stats(r.Context())
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "STATS_FAILED", "failed to collect dataset statistics", true, map[string]any{"details": err.Error()})
		return
	}

	byType, err := groupedCounts(deps, r, "SELECT type, COUNT(*) AS n FROM feed_products_sample WHERE is_active = 1 GROUP BY type")
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "STATS_FAILED", "failed to group products by type", true, map[string]any{"details": err.Error()})
		return
	}
	byCountry, err := groupedCounts(deps, r, "SELECT supplier_country, COUNT(*) AS n FROM feed_products_sample WHERE is_active = 1 AND supplier_country IS NOT NULL GROUP BY supplier_country")
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "STATS_FAILED", "failed to group products by country", true, map[string]any{"details": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalProducts:     stats.TotalProducts,
		ActiveProducts:    stats.ActiveProducts,
		UniqueSuppliers:   stats.Suppliers,
		TotalRestrictions: stats.RestrictionRows,
		ProductsByType:    byType,
		ProductsByCountry: byCountry,
	})
}

func groupedCounts(deps Dependencies, r *http.Request, sqlText string) (map[string]int64, error) {
	result, err := deps.Store.Execute(r.Context(), sqlText)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(result.Rows))
	for _, row := range result.Rows {
		if len(row) < 2 {
			continue
		}
		key, ok := row[0].(string)
		if !ok || key == "" {
			continue
		}
		counts[key] = toInt64(row[1])
	}
	return counts, nil
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func handleProductTypes(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Store == nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, "STORE_NOT_CONFIGURED", "dataset store is not configured", true, nil)
		return
	}
	result, err := deps.Store.Execute(r.Context(),
		"SELECT DISTINCT type FROM feed_products_sample WHERE is_active = 1 ORDER BY type")
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "BROWSE_FAILED", "failed to list product types", true, map[string]any{"details": err.Error()})
		return
	}
	types := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		if len(row) > 0 {
			if name, ok := row[0].(string); ok {
				types = append(types, name)
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"types": types})
}

func handleCountries(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Store == nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, "STORE_NOT_CONFIGURED", "dataset store is not configured", true, nil)
		return
	}
	result, err := deps.Store.Execute(r.Context(), `SELECT DISTINCT supplier_country, COUNT(*) AS product_count
FROM feed_products_sample
WHERE is_active = 1 AND supplier_country IS NOT NULL
GROUP BY supplier_country
ORDER BY product_count DESC`)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "BROWSE_FAILED", "failed to list countries", true, map[string]any{"details": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"countries": result.Maps()})
}

func handleSuppliers(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Store == nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, "STORE_NOT_CONFIGURED", "dataset store is not configured", true, nil)
		return
	}

	var (
		builder strings.Builder
		args    []any
	)
	builder.WriteString(`SELECT DISTINCT supplier, supplier_country, supplier_email, supplier_phone, COUNT(*) AS product_count
FROM feed_products_sample
WHERE is_active = 1 AND supplier IS NOT NULL`)
	if country := strings.TrimSpace(r.URL.Query().Get("country")); country != "" {
		builder.WriteString(" AND supplier_country = ?")
		args = append(args, country)
	}
	builder.WriteString(`
GROUP BY supplier, supplier_country, supplier_email, supplier_phone
ORDER BY supplier_country, supplier`)

	result, err := deps.Store.Execute(r.Context(), builder.String(), args...)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "BROWSE_FAILED", "failed to list suppliers", true, map[string]any{"details": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suppliers": result.Maps()})
}

type productSearchRequest struct {
	ProductName string   `json:"product_name"`
	ProductType string   `json:"product_type"`
	Country     string   `json:"country"`
	Supplier    string   `json:"supplier"`
	MinPrice    *float64 `json:"min_price"`
	MaxPrice    *float64 `json:"max_price"`
	Limit       int      `json:"limit"`
}

const productSearchDefaultLimit = 20

// handleProductSearch is the structured alternative to the natural language
// endpoint: callers filter the active catalogue directly instead of phrasing
// a question. Every filter value is bound as a parameter.
func handleProductSearch(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Store == nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, "STORE_NOT_CONFIGURED", "dataset store is not configured", true, nil)
		return
	}

	var req productSearchRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "INVALID_REQUEST_BODY", "request body must be a valid JSON search request", false, map[string]any{"details": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = productSearchDefaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	var (
		builder strings.Builder
		args    []any
		applied = map[string]any{}
	)
	builder.WriteString(`SELECT product_name, type, supplier, supplier_country,
cost_per_kg, cost_currency, supplier_email, supplier_phone
FROM feed_products_sample
WHERE is_active = 1`)
	if name := strings.TrimSpace(req.ProductName); name != "" {
		builder.WriteString(" AND LOWER(product_name) LIKE ?")
		args = append(args, "%"+strings.ToLower(name)+"%")
		applied["product_name"] = name
	}
	if typ := strings.TrimSpace(req.ProductType); typ != "" {
		builder.WriteString(" AND type = ?")
		args = append(args, typ)
		applied["product_type"] = typ
	}
	if country := strings.TrimSpace(req.Country); country != "" {
		builder.WriteString(" AND supplier_country = ?")
		args = append(args, country)
		applied["country"] = country
	}
	if supplier := strings.TrimSpace(req.Supplier); supplier != "" {
		builder.WriteString(" AND LOWER(supplier) LIKE ?")
		args = append(args, "%"+strings.ToLower(supplier)+"%")
		applied["supplier"] = supplier
	}
	if req.MinPrice != nil {
		builder.WriteString(" AND cost_per_kg >= ?")
		args = append(args, *req.MinPrice)
		applied["min_price"] = *req.MinPrice
	}
	if req.MaxPrice != nil {
		builder.WriteString(" AND cost_per_kg <= ?")
		args = append(args, *req.MaxPrice)
		applied["max_price"] = *req.MaxPrice
	}
	builder.WriteString(`
ORDER BY cost_per_kg ASC
LIMIT ?`)
	args = append(args, limit)
	applied["limit"] = limit

	result, err := deps.Store.Execute(r.Context(), builder.String(), args...)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "SEARCH_FAILED", "product search failed", true, map[string]any{"details": err.Error()})
		return
	}
	data := result.Maps()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"data":            data,
		"count":           len(data),
		"filters_applied": applied,
	})
}

func handlePriceHistory(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Store == nil {
		writeError(r.Context(), w, http.StatusServiceUnavailable, "STORE_NOT_CONFIGURED", "dataset store is not configured", true, nil)
		return
	}
	product := strings.TrimSpace(r.PathValue("product"))
	if product == "" {
		writeError(r.Context(), w, http.StatusBadRequest, "PRODUCT_REQUIRED", "product path parameter is required", false, nil)
		return
	}

	var (
		builder strings.Builder
		args    []any
	)
	builder.WriteString(`SELECT strftime(to_timestamp(created_at), '%Y-%m') AS month,
ROUND(AVG(cost_per_kg), 2) AS avg_price,
ROUND(MIN(cost_per_kg), 2) AS min_price,
ROUND(MAX(cost_per_kg), 2) AS max_price,
cost_currency, supplier_country
FROM feed_products_sample
WHERE LOWER(product_name) LIKE ? AND product_code LIKE '%HIST%'`)
	args = append(args, "%"+strings.ToLower(product)+"%")
	if country := strings.TrimSpace(r.URL.Query().Get("country")); country != "" {
		builder.WriteString(" AND supplier_country = ?")
		args = append(args, country)
	}
	builder.WriteString(`
GROUP BY month, supplier_country, cost_currency
ORDER BY month ASC`)

	result, err := deps.Store.Execute(r.Context(), builder.String(), args...)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "BROWSE_FAILED", "failed to load price history", true, map[string]any{"details": err.Error()})
		return
	}
	history := result.Maps()
	writeJSON(w, http.StatusOK, map[string]any{
		"product": product,
		"history": history,
		"count":   len(history),
	})
}
