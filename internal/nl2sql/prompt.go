package nl2sql

import (
	"fmt"
	"strings"
)

const schemaDescription = `Table: feed_products_sample
Columns:
  - id: INTEGER PRIMARY KEY
  - product_name: TEXT (e.g. 'Alfalfa hay (mid-bloom)', 'Wheat Straw', 'Barley')
  - product_code: TEXT (e.g. 'FP-001', 'MP-UAE-001'; historical rows contain 'HIST')
  - name: TEXT (same as product_name)
  - type: TEXT (one of: 'Fodder', 'Concentrate', 'Additive')
  - cost_per_kg: DOUBLE (price per kilogram)
  - cost_currency: TEXT (e.g. 'AED', 'SAR', 'QAR', 'EGP', 'USD')
  - supplier: TEXT (supplier company name, NULL for standard products)
  - supplier_country: TEXT (e.g. 'UAE', 'Saudi Arabia', 'Egypt', 'Qatar')
  - supplier_email: TEXT
  - supplier_phone: TEXT
  - supplier_address: TEXT
  - is_standard_product: BOOLEAN (reference prices without supplier info)
  - created_at: BIGINT (Unix timestamp, used for historical price tracking)
  - is_active: BOOLEAN (true for current prices, false for historical)

Table: feed_product_restrictions
Columns:
  - id: INTEGER PRIMARY KEY
  - product_id: INTEGER (foreign key to feed_products_sample.id)
  - species: TEXT (e.g. 'cattle', 'sheep', 'goat')
  - sex: TEXT (e.g. 'male', 'female', NULL for both)
  - min_age_months: INTEGER
  - max_age_months: INTEGER
  - breeding_cycle: TEXT ('early', 'mid', 'late')
  - lactation_cycle: TEXT ('early', 'mid', 'late')
  - production_focus: TEXT ('dairy', 'beef')
  - is_eligible: BOOLEAN
  - max_perc_feed: DOUBLE (maximum percentage in total feed)
  - max_perc_conc: DOUBLE (maximum percentage in concentrate)
  - is_active: BOOLEAN

Key information:
- Prices are stored in local currencies (AED for UAE, SAR for Saudi Arabia, EGP for Egypt, QAR for Qatar, USD otherwise).
- Historical prices have is_active = false and product_code containing 'HIST'.
- Market products (is_standard_product = false) carry supplier details.
- created_at is seconds since the Unix epoch; format months with strftime(to_timestamp(created_at), '%Y-%m').`

var promptExamples = []struct {
	question string
	sql      string
}{
	{
		"Who is selling the cheapest Wheat Straw?",
		`SELECT supplier, supplier_country, cost_per_kg, cost_currency
FROM feed_products_sample
WHERE LOWER(product_name) LIKE '%wheat straw%' AND is_active = 1 AND supplier IS NOT NULL
ORDER BY cost_per_kg ASC
LIMIT 5`,
	},
	{
		"What is the average price of Barley?",
		`SELECT supplier_country, cost_currency,
  ROUND(AVG(cost_per_kg), 2) AS avg_price,
  ROUND(MIN(cost_per_kg), 2) AS min_price,
  ROUND(MAX(cost_per_kg), 2) AS max_price
FROM feed_products_sample
WHERE LOWER(product_name) LIKE '%barley%' AND is_active = 1
GROUP BY supplier_country, cost_currency`,
	},
	{
		"When has been the best time to buy Alfalfa hay?",
		`SELECT strftime(to_timestamp(created_at), '%Y-%m') AS month, cost_per_kg, cost_currency, supplier_country
FROM feed_products_sample
WHERE LOWER(product_name) LIKE '%alfalfa%' AND product_code LIKE '%HIST%'
ORDER BY cost_per_kg ASC
LIMIT 5`,
	},
	{
		"Which products have feeding restrictions for young cattle?",
		`SELECT p.product_name, p.type, r.species, r.min_age_months, r.max_age_months, r.max_perc_feed
FROM feed_products_sample p
JOIN feed_product_restrictions r ON p.id = r.product_id
WHERE r.species = 'cattle' AND r.max_age_months <= 12 AND r.is_active = 1`,
	},
}

// systemPrompt describes the dataset and the strict JSON contract the
// provider must answer with.
func systemPrompt() string {
	var examples strings.Builder
	for _, ex := range promptExamples {
		fmt.Fprintf(&examples, "Question: %s\nSQL:\n%s\n\n", ex.question, ex.sql)
	}

	return `You convert natural language questions about livestock feed products into a single DuckDB SQL query.
The dataset covers feed prices, suppliers and feeding restrictions for the MENA region.

` + schemaDescription + `

Rules:
1. Return valid DuckDB SQL only, never DDL or DML.
2. Use LIKE with % wildcards for fuzzy matching on product names.
3. Filter is_active = 1 for current prices; use product_code LIKE '%HIST%' for historical data.
4. Order by cost_per_kg ASC for cheapest/best-price questions.
5. Filter supplier IS NOT NULL when the question asks about suppliers.
6. Limit results to at most 20 rows.

Examples:
` + examples.String() + `Respond with ONLY a JSON object of this exact shape:
{"sql": "...", "explanation": "...", "response_template": "..."}
No text before or after the JSON object.`
}

func userPrompt(req Request) string {
	return fmt.Sprintf("Convert this question to SQL: %q\n\nThe user's language is: %s\nReturn only the JSON object with sql, explanation and response_template fields.",
		strings.TrimSpace(req.Question), req.Language)
}
