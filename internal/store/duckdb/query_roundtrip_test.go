package duckdb

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/nlq"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/seed"
)

// openSeededStore runs the compiled queries against an embedded in-memory
// database loaded with the built-in sample dataset, so dialect constructs
// like strftime over to_timestamp and alias grouping are exercised for real.
func openSeededStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(Config{})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if err := seed.Apply(context.Background(), st.DB(), logger, seed.Options{Recreate: true}); err != nil {
		t.Fatalf("seed.Apply() error = %v", err)
	}
	return st
}

func TestCompiledQueriesExecuteAgainstSeededDataset(t *testing.T) {
	st := openSeededStore(t)

	cases := []struct {
		name      string
		intent    nlq.Intent
		ents      nlq.Entities
		typeFacet string
	}{
		{name: "cheapest", intent: nlq.IntentCheapest, ents: nlq.Entities{Product: "wheat straw"}},
		{name: "average price", intent: nlq.IntentAveragePrice, ents: nlq.Entities{Product: "barley"}},
		{name: "historical trend", intent: nlq.IntentHistoricalTrend, ents: nlq.Entities{Product: "alfalfa"}},
		{name: "supplier lookup", intent: nlq.IntentSupplierLookup, ents: nlq.Entities{Country: "UAE"}},
		{name: "product list", intent: nlq.IntentProductList, typeFacet: "Concentrate"},
		{name: "restrictions", intent: nlq.IntentRestrictions, ents: nlq.Entities{Product: "urea"}},
		{name: "general search", intent: nlq.IntentGeneralSearch, ents: nlq.Entities{Product: "molasses"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := nlq.Compile(tc.intent, tc.ents, tc.typeFacet)
			result, err := st.Execute(context.Background(), q.SQL, q.Args...)
			if err != nil {
				t.Fatalf("Execute() error = %v\nSQL: %s", err, q.SQL)
			}
			if len(result.Rows) == 0 {
				t.Fatalf("no rows returned\nSQL: %s\nargs: %v", q.SQL, q.Args)
			}
			if len(result.Columns) == 0 {
				t.Fatalf("no columns returned for %s", tc.name)
			}
		})
	}
}

func TestHistoricalTrendGroupsByMonth(t *testing.T) {
	st := openSeededStore(t)

	q := nlq.Compile(nlq.IntentHistoricalTrend, nlq.Entities{Product: "alfalfa"}, "")
	result, err := st.Execute(context.Background(), q.SQL, q.Args...)
	if err != nil {
		t.Fatalf("Execute() error = %v\nSQL: %s", err, q.SQL)
	}
	if len(result.Rows) == 0 {
		t.Fatal("expected monthly rows for the alfalfa history series")
	}
	monthFormat := regexp.MustCompile(`^\d{4}-\d{2}$`)
	for _, row := range result.Rows {
		month, ok := row[0].(string)
		if !ok || !monthFormat.MatchString(month) {
			t.Fatalf("month = %#v", row[0])
		}
	}
}

func TestRestrictionsJoinFindsActiveRules(t *testing.T) {
	st := openSeededStore(t)

	q := nlq.Compile(nlq.IntentRestrictions, nlq.Entities{Product: "urea"}, "")
	result, err := st.Execute(context.Background(), q.SQL, q.Args...)
	if err != nil {
		t.Fatalf("Execute() error = %v\nSQL: %s", err, q.SQL)
	}
	if len(result.Rows) == 0 {
		t.Fatal("expected at least one feeding rule for urea")
	}
}
