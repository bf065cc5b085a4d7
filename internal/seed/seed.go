package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

type Options struct {
	// Recreate drops and rebuilds both tables before loading.
	Recreate bool
	// Products overrides the built-in sample set, e.g. rows imported from
	// an upstream ERP database.
	Products []Product
}

// Apply creates the schema and loads the dataset: current and market
// prices, the historical monthly series, and feeding restrictions derived
// from the loaded products.
func Apply(ctx context.Context, db *sql.DB, logger *slog.Logger, opts Options) error {
	if opts.Recreate {
		for _, stmt := range dropStatements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("drop tables: %w", err)
			}
		}
	}
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	products := opts.Products
	if len(products) == 0 {
		products = defaultProducts()
	}

	nextID := int64(1)
	insertProduct := func(p Product) (int64, error) {
		id := nextID
		nextID++
		_, err := db.ExecContext(ctx, `INSERT INTO feed_products_sample
			(id, product_name, product_code, name, type, cost_per_kg, cost_currency,
			 supplier, supplier_country, supplier_email, supplier_phone, supplier_address,
			 is_standard_product, created_at, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, p.ProductName, p.ProductCode, p.ProductName, p.Type, p.CostPerKg, p.CostCurrency,
			nullable(p.Supplier), nullable(p.SupplierCountry), nullable(p.SupplierEmail),
			nullable(p.SupplierPhone), nullable(p.SupplierAddress),
			p.IsStandardProduct, p.CreatedAt, p.IsActive)
		if err != nil {
			return 0, fmt.Errorf("insert product %s: %w", p.ProductCode, err)
		}
		return id, nil
	}

	productCount := 0
	restrictionID := int64(1)
	restrictionCount := 0
	for _, p := range products {
		id, err := insertProduct(p)
		if err != nil {
			return err
		}
		productCount++

		for _, r := range restrictionsFor(p) {
			_, err := db.ExecContext(ctx, `INSERT INTO feed_product_restrictions
				(id, product_id, species, sex, min_age_months, max_age_months,
				 lactation_cycle, production_focus, max_perc_feed, max_perc_conc, is_active)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				restrictionID, id, r.Species, nullable(r.Sex), r.MinAgeMonths, r.MaxAgeMonths,
				nullable(r.LactationCycle), nullable(r.ProductionFocus),
				zeroToNull(r.MaxPercFeed), zeroToNull(r.MaxPercConc), true)
			if err != nil {
				return fmt.Errorf("insert restriction for %s: %w", p.ProductCode, err)
			}
			restrictionID++
			restrictionCount++
		}
	}

	historicalCount := 0
	for _, series := range historicalData {
		for _, point := range series.Points {
			if _, err := insertProduct(Product{
				ProductName:       series.ProductName,
				ProductCode:       series.ProductCode,
				Type:              series.Type,
				CostPerKg:         point.Price,
				CostCurrency:      series.Currency,
				SupplierCountry:   series.Country,
				IsStandardProduct: true,
				CreatedAt:         point.Timestamp,
				IsActive:          point.Timestamp == currentPriceTimestamp,
			}); err != nil {
				return err
			}
			historicalCount++
		}
	}

	logger.InfoContext(ctx, "dataset seeded",
		slog.Int("products", productCount),
		slog.Int("historical_rows", historicalCount),
		slog.Int("restrictions", restrictionCount))
	return nil
}

// defaultProducts returns the built-in sample set with active timestamps.
func defaultProducts() []Product {
	out := make([]Product, 0, len(standardProducts)+len(marketProducts))
	for _, p := range standardProducts {
		p.IsStandardProduct = true
		p.CreatedAt = currentPriceTimestamp
		p.IsActive = true
		out = append(out, p)
	}
	for _, p := range marketProducts {
		p.CreatedAt = currentPriceTimestamp
		p.IsActive = true
		out = append(out, p)
	}
	return out
}

// Restriction is a feeding rule attached to a product.
type Restriction struct {
	Species         string
	Sex             string
	MinAgeMonths    int
	MaxAgeMonths    int
	LactationCycle  string
	ProductionFocus string
	MaxPercFeed     float64
	MaxPercConc     float64
}

// restrictionsFor derives feeding rules from the product name. Raw barley
// is capped for young cattle, soy for lactating dairy cows, urea for adult
// cattle only, and molasses as a general feed share.
func restrictionsFor(p Product) []Restriction {
	name := strings.ToLower(p.ProductName)
	switch {
	case strings.Contains(name, "barley") && p.Type == "Concentrate":
		return []Restriction{
			{Species: "cattle", MinAgeMonths: 0, MaxAgeMonths: 12, MaxPercFeed: 30.0},
			{Species: "sheep", MaxPercFeed: 20.0},
		}
	case strings.Contains(name, "soya") || strings.Contains(name, "soybean"):
		return []Restriction{
			{Species: "cattle", Sex: "female", LactationCycle: "early", ProductionFocus: "dairy", MaxPercConc: 25.0},
		}
	case strings.Contains(name, "urea"):
		return []Restriction{
			{Species: "cattle", MinAgeMonths: 12, MaxPercFeed: 1.0},
		}
	case strings.Contains(name, "molasses"):
		return []Restriction{
			{Species: "cattle", MaxPercFeed: 10.0},
		}
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func zeroToNull(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}
