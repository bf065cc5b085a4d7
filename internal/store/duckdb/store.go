package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/store"
)

type Config struct {
	// Path is the database file. Empty means an in-memory database.
	Path string
}

// Store runs queries against a DuckDB database holding the feed product
// tables.
type Store struct {
	db *sql.DB
}

func Open(cfg Config) (*Store, error) {
	db, err := sql.Open("duckdb", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing handle. Used by tests and by the seed tool,
// which needs write access to the same connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for the seed and snapshot tooling.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Execute(ctx context.Context, sqlText string, args ...any) (store.Result, error) {
	sqlText = stripTrailingSemicolons(sqlText)
	if sqlText == "" {
		return store.Result{}, fmt.Errorf("sql is required")
	}

	rows, err := s.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return store.Result{}, fmt.Errorf("execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return store.Result{}, fmt.Errorf("query columns: %w", err)
	}

	resultRows := make([][]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return store.Result{}, fmt.Errorf("scan row: %w", err)
		}
		resultRows = append(resultRows, normalizeValues(values))
	}
	if err := rows.Err(); err != nil {
		return store.Result{}, fmt.Errorf("iterate rows: %w", err)
	}

	return store.Result{Columns: columns, Rows: resultRows}, nil
}

func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Stats(ctx context.Context) (store.Stats, error) {
	var stats store.Stats
	counts := []struct {
		sql  string
		dest *int64
	}{
		{"SELECT COUNT(*) FROM feed_products_sample", &stats.TotalProducts},
		{"SELECT COUNT(*) FROM feed_products_sample WHERE is_active = 1", &stats.ActiveProducts},
		{"SELECT COUNT(DISTINCT supplier) FROM feed_products_sample WHERE supplier IS NOT NULL", &stats.Suppliers},
		{"SELECT COUNT(DISTINCT supplier_country) FROM feed_products_sample WHERE supplier_country IS NOT NULL", &stats.Countries},
		{"SELECT COUNT(*) FROM feed_products_sample WHERE product_code LIKE '%HIST%'", &stats.HistoricalRows},
		{"SELECT COUNT(*) FROM feed_product_restrictions", &stats.RestrictionRows},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.sql).Scan(c.dest); err != nil {
			return store.Stats{}, fmt.Errorf("dataset stats: %w", err)
		}
	}
	return stats, nil
}

func normalizeValues(values []any) []any {
	normalized := make([]any, len(values))
	for i, value := range values {
		switch typed := value.(type) {
		case []byte:
			normalized[i] = string(typed)
		default:
			normalized[i] = typed
		}
	}
	return normalized
}

func stripTrailingSemicolons(sqlText string) string {
	trimmed := strings.TrimSpace(sqlText)
	for strings.HasSuffix(trimmed, ";") {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, ";"))
	}
	return trimmed
}
