package nlq

import "strings"

// CompiledQuery is a parameterized query ready for execution. User-derived
// values only ever appear in Args, never in the SQL text itself.
type CompiledQuery struct {
	SQL  string
	Args []any
	// Explanation is a diagnostic summary of what the query does.
	Explanation string
	// Template is the narrative header key consumed by the formatter.
	Template string
}

// Compile maps an intent and its extracted entities to the query shape for
// that intent. It always succeeds: an absent entity simply omits the
// corresponding filter clause so the dimension stays unconstrained.
func Compile(intent Intent, ents Entities, typeFacet string) CompiledQuery {
	switch intent {
	case IntentCheapest:
		return compileCheapest(ents)
	case IntentAveragePrice:
		return compileAveragePrice(ents)
	case IntentHistoricalTrend:
		return compileHistoricalTrend(ents)
	case IntentSupplierLookup:
		return compileSupplierLookup(ents)
	case IntentProductList:
		return compileProductList(ents, typeFacet)
	case IntentRestrictions:
		return compileRestrictions(ents)
	default:
		return compileGeneralSearch(ents)
	}
}

// clauseSet accumulates WHERE predicates and their bound values.
type clauseSet struct {
	conds []string
	args  []any
}

func (c *clauseSet) add(cond string, args ...any) {
	c.conds = append(c.conds, cond)
	c.args = append(c.args, args...)
}

func (c *clauseSet) addProduct(column, product string) {
	if product != "" {
		c.add("LOWER("+column+") LIKE ?", "%"+strings.ToLower(product)+"%")
	}
}

func (c *clauseSet) addCountry(country string) {
	if country != "" {
		c.add("supplier_country = ?", country)
	}
}

func (c *clauseSet) where() string {
	return "WHERE " + strings.Join(c.conds, "\n  AND ")
}

func compileCheapest(ents Entities) CompiledQuery {
	var clauses clauseSet
	clauses.add("is_active = 1")
	clauses.add("supplier IS NOT NULL")
	clauses.addProduct("product_name", ents.Product)
	clauses.addCountry(ents.Country)

	sql := `SELECT product_name, supplier, supplier_country, cost_per_kg, cost_currency,
       supplier_email, supplier_phone
FROM feed_products_sample
` + clauses.where() + `
ORDER BY cost_per_kg ASC
LIMIT 10`

	return CompiledQuery{
		SQL:         sql,
		Args:        clauses.args,
		Explanation: "finding cheapest suppliers for " + subject(ents.Product),
		Template:    "cheapest_suppliers",
	}
}

func compileAveragePrice(ents Entities) CompiledQuery {
	var clauses clauseSet
	clauses.add("is_active = 1")
	clauses.addProduct("product_name", ents.Product)
	clauses.addCountry(ents.Country)

	sql := `SELECT supplier_country, cost_currency,
       ROUND(AVG(cost_per_kg), 2) AS avg_price,
       ROUND(MIN(cost_per_kg), 2) AS min_price,
       ROUND(MAX(cost_per_kg), 2) AS max_price,
       COUNT(*) AS supplier_count
FROM feed_products_sample
` + clauses.where() + `
GROUP BY supplier_country, cost_currency
ORDER BY avg_price ASC`

	return CompiledQuery{
		SQL:         sql,
		Args:        clauses.args,
		Explanation: "calculating average prices for " + subject(ents.Product),
		Template:    "average_prices",
	}
}

func compileHistoricalTrend(ents Entities) CompiledQuery {
	var clauses clauseSet
	clauses.add("product_code LIKE '%HIST%'")
	clauses.addProduct("product_name", ents.Product)
	clauses.addCountry(ents.Country)

	sql := `SELECT strftime(to_timestamp(created_at), '%Y-%m') AS month,
       ROUND(AVG(cost_per_kg), 2) AS avg_price,
       cost_currency, supplier_country
FROM feed_products_sample
` + clauses.where() + `
GROUP BY month, supplier_country, cost_currency
ORDER BY avg_price ASC
LIMIT 10`

	return CompiledQuery{
		SQL:         sql,
		Args:        clauses.args,
		Explanation: "finding best months to buy " + subject(ents.Product),
		Template:    "best_months",
	}
}

func compileSupplierLookup(ents Entities) CompiledQuery {
	var clauses clauseSet
	clauses.add("is_active = 1")
	clauses.add("supplier IS NOT NULL")
	clauses.addProduct("product_name", ents.Product)
	clauses.addCountry(ents.Country)

	sql := `SELECT DISTINCT supplier, supplier_country, supplier_email, supplier_phone,
       product_name, cost_per_kg, cost_currency
FROM feed_products_sample
` + clauses.where() + `
ORDER BY supplier_country, cost_per_kg ASC
LIMIT 15`

	return CompiledQuery{
		SQL:         sql,
		Args:        clauses.args,
		Explanation: "finding suppliers for " + subject(ents.Product),
		Template:    "suppliers",
	}
}

func compileProductList(ents Entities, typeFacet string) CompiledQuery {
	var clauses clauseSet
	clauses.add("is_active = 1")
	if typeFacet != "" {
		clauses.add("type = ?", typeFacet)
	}
	clauses.addCountry(ents.Country)

	sql := `SELECT DISTINCT product_name, type,
       ROUND(AVG(cost_per_kg), 2) AS avg_price,
       cost_currency
FROM feed_products_sample
` + clauses.where() + `
GROUP BY product_name, type, cost_currency
ORDER BY type, product_name
LIMIT 30`

	explanation := "listing all products"
	if typeFacet != "" {
		explanation = "listing " + strings.ToLower(typeFacet) + " products"
	}
	return CompiledQuery{
		SQL:         sql,
		Args:        clauses.args,
		Explanation: explanation,
		Template:    "products",
	}
}

func compileRestrictions(ents Entities) CompiledQuery {
	var clauses clauseSet
	clauses.add("r.is_active = 1")
	clauses.addProduct("p.product_name", ents.Product)

	sql := `SELECT p.product_name, p.type, r.species, r.sex,
       r.min_age_months, r.max_age_months,
       r.max_perc_feed, r.max_perc_conc,
       r.production_focus, r.lactation_cycle
FROM feed_products_sample p
JOIN feed_product_restrictions r ON p.id = r.product_id
` + clauses.where() + `
ORDER BY p.product_name, r.species
LIMIT 20`

	return CompiledQuery{
		SQL:         sql,
		Args:        clauses.args,
		Explanation: "finding feeding restrictions for " + subject(ents.Product),
		Template:    "restrictions",
	}
}

func compileGeneralSearch(ents Entities) CompiledQuery {
	var clauses clauseSet
	clauses.add("is_active = 1")
	clauses.addProduct("product_name", ents.Product)
	clauses.addCountry(ents.Country)

	sql := `SELECT product_name, type, supplier, supplier_country,
       cost_per_kg, cost_currency
FROM feed_products_sample
` + clauses.where() + `
ORDER BY product_name, cost_per_kg
LIMIT 15`

	return CompiledQuery{
		SQL:         sql,
		Args:        clauses.args,
		Explanation: "general product search",
		Template:    "results",
	}
}

func subject(product string) string {
	if product == "" {
		return "products"
	}
	return product
}
