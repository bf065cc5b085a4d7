package duckdb

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestExecuteBindsArguments(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT product_name").
		WithArgs("%barley%", "UAE").
		WillReturnRows(sqlmock.NewRows([]string{"product_name", "cost_per_kg"}).
			AddRow("Barley", 1.25).
			AddRow("Barley Flakes", 1.60))

	s := NewWithDB(db)
	result, err := s.Execute(context.Background(),
		"SELECT product_name, cost_per_kg FROM feed_products_sample WHERE LOWER(product_name) LIKE ? AND supplier_country = ?;",
		"%barley%", "UAE")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d", len(result.Rows))
	}
	if result.Columns[0] != "product_name" {
		t.Fatalf("columns = %v", result.Columns)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestExecuteNormalizesByteSlices(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT supplier").
		WillReturnRows(sqlmock.NewRows([]string{"supplier"}).AddRow([]byte("Gulf Feed Co")))

	s := NewWithDB(db)
	result, err := s.Execute(context.Background(), "SELECT supplier FROM feed_products_sample")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Rows[0][0] != "Gulf Feed Co" {
		t.Fatalf("value = %#v, want string", result.Rows[0][0])
	}
}

func TestExecuteRejectsEmptySQL(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	s := NewWithDB(db)
	if _, err := s.Execute(context.Background(), "  ;; "); err == nil {
		t.Fatal("Execute() accepted empty SQL")
	}
}

func TestResultMapsKeyedByColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT product_name").
		WillReturnRows(sqlmock.NewRows([]string{"product_name", "cost_per_kg"}).AddRow("Urea", 2.1))

	s := NewWithDB(db)
	result, err := s.Execute(context.Background(), "SELECT product_name, cost_per_kg FROM feed_products_sample")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	maps := result.Maps()
	if len(maps) != 1 {
		t.Fatalf("maps = %d", len(maps))
	}
	if maps[0]["product_name"] != "Urea" {
		t.Fatalf("maps[0] = %v", maps[0])
	}
}

func TestStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, count := range []int64{120, 45, 12, 6, 75, 30} {
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
	}

	s := NewWithDB(db)
	stats, err := s.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalProducts != 120 || stats.ActiveProducts != 45 || stats.RestrictionRows != 30 {
		t.Fatalf("stats = %+v", stats)
	}
}
