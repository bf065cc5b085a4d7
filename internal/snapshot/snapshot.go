package snapshot

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/storage"
)

const tableName = "feed_products_sample"

// productRow mirrors the feed product table for parquet encoding. Nullable
// columns are pointers so NULLs survive a round trip.
type productRow struct {
	ID                int64    `parquet:"id"`
	ProductName       string   `parquet:"product_name"`
	ProductCode       *string  `parquet:"product_code,optional"`
	Type              *string  `parquet:"type,optional"`
	CostPerKg         *float64 `parquet:"cost_per_kg,optional"`
	CostCurrency      *string  `parquet:"cost_currency,optional"`
	Supplier          *string  `parquet:"supplier,optional"`
	SupplierCountry   *string  `parquet:"supplier_country,optional"`
	SupplierEmail     *string  `parquet:"supplier_email,optional"`
	SupplierPhone     *string  `parquet:"supplier_phone,optional"`
	SupplierAddress   *string  `parquet:"supplier_address,optional"`
	IsStandardProduct bool     `parquet:"is_standard_product"`
	CreatedAt         *int64   `parquet:"created_at,optional"`
	IsActive          bool     `parquet:"is_active"`
}

// Export writes the current product table as a parquet object and returns
// its key.
func Export(ctx context.Context, db *sql.DB, store storage.ObjectStore, capturedAt time.Time) (string, error) {
	rows, err := readProducts(ctx, db)
	if err != nil {
		return "", err
	}
	data, err := encode(rows)
	if err != nil {
		return "", err
	}

	key, err := storage.BuildSnapshotPath(tableName, capturedAt)
	if err != nil {
		return "", err
	}
	if _, err := store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), storage.PutOptions{ContentType: "application/octet-stream"}); err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return key, nil
}

// Restore replaces the product table contents with the rows from a
// previously exported snapshot object.
func Restore(ctx context.Context, db *sql.DB, store storage.ObjectStore, key string) (int, error) {
	reader, err := store.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("fetch snapshot %q: %w", key, err)
	}
	data, err := io.ReadAll(reader)
	closeErr := reader.Close()
	if err != nil {
		return 0, fmt.Errorf("read snapshot %q: %w", key, err)
	}
	if closeErr != nil {
		return 0, fmt.Errorf("close snapshot %q: %w", key, closeErr)
	}

	rows, err := decode(data)
	if err != nil {
		return 0, err
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM "+tableName); err != nil {
		return 0, fmt.Errorf("clear product table: %w", err)
	}
	for _, row := range rows {
		_, err := db.ExecContext(ctx, `INSERT INTO feed_products_sample
			(id, product_name, product_code, name, type, cost_per_kg, cost_currency,
			 supplier, supplier_country, supplier_email, supplier_phone, supplier_address,
			 is_standard_product, created_at, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			row.ID, row.ProductName, row.ProductCode, row.ProductName, row.Type,
			row.CostPerKg, row.CostCurrency, row.Supplier, row.SupplierCountry,
			row.SupplierEmail, row.SupplierPhone, row.SupplierAddress,
			row.IsStandardProduct, row.CreatedAt, row.IsActive)
		if err != nil {
			return 0, fmt.Errorf("restore product %d: %w", row.ID, err)
		}
	}
	return len(rows), nil
}

func readProducts(ctx context.Context, db *sql.DB) ([]productRow, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, product_name, product_code, type,
		cost_per_kg, cost_currency, supplier, supplier_country,
		supplier_email, supplier_phone, supplier_address,
		is_standard_product, created_at, is_active
		FROM feed_products_sample ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []productRow
	for rows.Next() {
		var r productRow
		if err := rows.Scan(&r.ID, &r.ProductName, &r.ProductCode, &r.Type,
			&r.CostPerKg, &r.CostCurrency, &r.Supplier, &r.SupplierCountry,
			&r.SupplierEmail, &r.SupplierPhone, &r.SupplierAddress,
			&r.IsStandardProduct, &r.CreatedAt, &r.IsActive); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

func encode(rows []productRow) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	writer := parquet.NewGenericWriter[productRow](buf)
	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			return nil, fmt.Errorf("write parquet rows: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close parquet writer: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) ([]productRow, error) {
	rows, err := parquet.Read[productRow](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("read parquet rows: %w", err)
	}
	return rows, nil
}
