package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ImportFromPostgres reads the feed product table from an upstream ERP
// database so deployments can seed from live data instead of the built-in
// samples.
func ImportFromPostgres(ctx context.Context, dsn string) ([]Product, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open upstream db: %w", err)
	}
	defer func() { _ = db.Close() }()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping upstream db: %w", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT product_name, product_code, type,
		cost_per_kg, cost_currency, supplier, supplier_country,
		supplier_email, supplier_phone, supplier_address,
		is_standard_product, created_at, is_active
		FROM public.feed_products_sample`)
	if err != nil {
		return nil, fmt.Errorf("query upstream products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []Product
	for rows.Next() {
		var p Product
		var supplier, country, email, phone, address sql.NullString
		var code sql.NullString
		var cost sql.NullFloat64
		var createdAt sql.NullInt64
		if err := rows.Scan(&p.ProductName, &code, &p.Type, &cost, &p.CostCurrency,
			&supplier, &country, &email, &phone, &address,
			&p.IsStandardProduct, &createdAt, &p.IsActive); err != nil {
			return nil, fmt.Errorf("scan upstream product: %w", err)
		}
		p.ProductCode = code.String
		p.CostPerKg = cost.Float64
		p.Supplier = supplier.String
		p.SupplierCountry = country.String
		p.SupplierEmail = email.String
		p.SupplierPhone = phone.String
		p.SupplierAddress = address.String
		p.CreatedAt = createdAt.Int64
		if p.CreatedAt == 0 {
			p.CreatedAt = currentPriceTimestamp
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate upstream products: %w", err)
	}
	return products, nil
}
