package store

import "context"

// Result is a materialized query result. Columns keep the SELECT order so
// callers can render rows positionally or by name.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Maps converts the positional rows into column-keyed maps.
func (r Result) Maps() []map[string]any {
	out := make([]map[string]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		m := make(map[string]any, len(r.Columns))
		for i, col := range r.Columns {
			if i < len(row) {
				m[col] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}

// Stats summarizes the loaded dataset.
type Stats struct {
	TotalProducts   int64 `json:"total_products"`
	ActiveProducts  int64 `json:"active_products"`
	Suppliers       int64 `json:"suppliers"`
	Countries       int64 `json:"countries"`
	HistoricalRows  int64 `json:"historical_rows"`
	RestrictionRows int64 `json:"restriction_rows"`
}

// Store executes read queries against the feed product dataset.
type Store interface {
	Execute(ctx context.Context, sqlText string, args ...any) (Result, error)
	HealthCheck(ctx context.Context) error
	Stats(ctx context.Context) (Stats, error)
}
