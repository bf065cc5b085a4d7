package nlq

import (
	"strings"
	"testing"
)

func TestCompileCheapestBindsEntities(t *testing.T) {
	q := Compile(IntentCheapest, Entities{Product: "wheat straw", Country: "UAE"}, "")

	if q.Template != "cheapest_suppliers" {
		t.Fatalf("Template = %q, want cheapest_suppliers", q.Template)
	}
	if !strings.Contains(q.SQL, "LOWER(product_name) LIKE ?") {
		t.Fatalf("SQL missing product placeholder:\n%s", q.SQL)
	}
	if !strings.Contains(q.SQL, "supplier_country = ?") {
		t.Fatalf("SQL missing country placeholder:\n%s", q.SQL)
	}
	if len(q.Args) != 2 || q.Args[0] != "%wheat straw%" || q.Args[1] != "UAE" {
		t.Fatalf("Args = %v, want [%%wheat straw%% UAE]", q.Args)
	}
	if !strings.Contains(q.SQL, "LIMIT 10") {
		t.Fatalf("SQL missing LIMIT 10:\n%s", q.SQL)
	}
}

func TestCompileOmitsAbsentFilters(t *testing.T) {
	q := Compile(IntentCheapest, Entities{}, "")

	if strings.Contains(q.SQL, "LIKE ?") || strings.Contains(q.SQL, "supplier_country = ?") {
		t.Fatalf("SQL has filters for absent entities:\n%s", q.SQL)
	}
	if len(q.Args) != 0 {
		t.Fatalf("Args = %v, want none", q.Args)
	}
}

func TestCompileHistoricalTrendShape(t *testing.T) {
	q := Compile(IntentHistoricalTrend, Entities{Product: "alfalfa"}, "")

	for _, want := range []string{
		"product_code LIKE '%HIST%'",
		"strftime(to_timestamp(created_at), '%Y-%m')",
		"GROUP BY month",
		"LIMIT 10",
	} {
		if !strings.Contains(q.SQL, want) {
			t.Fatalf("SQL missing %q:\n%s", want, q.SQL)
		}
	}
	if q.Template != "best_months" {
		t.Fatalf("Template = %q, want best_months", q.Template)
	}
}

func TestCompileProductListTypeFacet(t *testing.T) {
	q := Compile(IntentProductList, Entities{}, "Fodder")

	if !strings.Contains(q.SQL, "type = ?") {
		t.Fatalf("SQL missing type facet placeholder:\n%s", q.SQL)
	}
	if len(q.Args) != 1 || q.Args[0] != "Fodder" {
		t.Fatalf("Args = %v, want [Fodder]", q.Args)
	}

	q = Compile(IntentProductList, Entities{}, "")
	if strings.Contains(q.SQL, "type = ?") {
		t.Fatalf("SQL has type facet without one requested:\n%s", q.SQL)
	}
}

func TestCompileRestrictionsJoins(t *testing.T) {
	q := Compile(IntentRestrictions, Entities{Product: "urea"}, "")

	if !strings.Contains(q.SQL, "JOIN feed_product_restrictions r ON p.id = r.product_id") {
		t.Fatalf("SQL missing restrictions join:\n%s", q.SQL)
	}
	if len(q.Args) != 1 || q.Args[0] != "%urea%" {
		t.Fatalf("Args = %v, want [%%urea%%]", q.Args)
	}
}

// A hostile entity value must never change the query shape, only the bound
// argument list.
func TestCompileNeverInlinesValues(t *testing.T) {
	benign := Compile(IntentGeneralSearch, Entities{Product: "barley", Country: "UAE"}, "")
	hostile := Compile(IntentGeneralSearch, Entities{
		Product: "barley'; DROP TABLE feed_products_sample; --",
		Country: "UAE' OR '1'='1",
	}, "")

	if benign.SQL != hostile.SQL {
		t.Fatalf("SQL differs for hostile input:\nbenign:\n%s\nhostile:\n%s", benign.SQL, hostile.SQL)
	}
	if len(benign.Args) != len(hostile.Args) {
		t.Fatalf("arg count differs: %d vs %d", len(benign.Args), len(hostile.Args))
	}
	if strings.Contains(hostile.SQL, "DROP TABLE") {
		t.Fatalf("hostile value leaked into SQL:\n%s", hostile.SQL)
	}
}

func TestCompileAllIntentsHaveTemplates(t *testing.T) {
	intents := map[Intent]string{
		IntentCheapest:        "cheapest_suppliers",
		IntentAveragePrice:    "average_prices",
		IntentHistoricalTrend: "best_months",
		IntentSupplierLookup:  "suppliers",
		IntentProductList:     "products",
		IntentRestrictions:    "restrictions",
		IntentGeneralSearch:   "results",
	}
	for intent, want := range intents {
		q := Compile(intent, Entities{}, "")
		if q.Template != want {
			t.Fatalf("Compile(%q).Template = %q, want %q", intent, q.Template, want)
		}
		if q.SQL == "" || q.Explanation == "" {
			t.Fatalf("Compile(%q) produced empty SQL or explanation", intent)
		}
	}
}
