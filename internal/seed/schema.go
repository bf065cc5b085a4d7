package seed

// schemaStatements creates the two dataset tables and their lookup indexes.
// IDs are assigned by the loader so the DDL stays portable across DuckDB
// versions without sequences.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS feed_products_sample (
		id BIGINT PRIMARY KEY,
		product_name TEXT NOT NULL,
		product_code TEXT,
		name TEXT,
		type TEXT,
		cost_per_kg DOUBLE,
		cost_currency TEXT,
		supplier TEXT,
		supplier_country TEXT,
		supplier_email TEXT,
		supplier_phone TEXT,
		supplier_address TEXT,
		is_standard_product BOOLEAN DEFAULT FALSE,
		created_at BIGINT,
		is_active BOOLEAN DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS feed_product_restrictions (
		id BIGINT PRIMARY KEY,
		product_id BIGINT,
		species TEXT,
		sex TEXT,
		min_age_months INTEGER,
		max_age_months INTEGER,
		breeding_cycle TEXT,
		lactation_cycle TEXT,
		production_focus TEXT,
		is_eligible BOOLEAN DEFAULT TRUE,
		max_perc_feed DOUBLE,
		max_perc_conc DOUBLE,
		is_active BOOLEAN DEFAULT TRUE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_name ON feed_products_sample(product_name)`,
	`CREATE INDEX IF NOT EXISTS idx_product_type ON feed_products_sample(type)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier_country ON feed_products_sample(supplier_country)`,
	`CREATE INDEX IF NOT EXISTS idx_is_active ON feed_products_sample(is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier ON feed_products_sample(supplier)`,
	`CREATE INDEX IF NOT EXISTS idx_created_at ON feed_products_sample(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_restrictions_product ON feed_product_restrictions(product_id)`,
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS feed_product_restrictions`,
	`DROP TABLE IF EXISTS feed_products_sample`,
}
