package agent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/nl2sql"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/store"
)

type fakeStore struct {
	result   store.Result
	err      error
	lastSQL  string
	lastArgs []any
}

func (f *fakeStore) Execute(_ context.Context, sqlText string, args ...any) (store.Result, error) {
	f.lastSQL = sqlText
	f.lastArgs = args
	if f.err != nil {
		return store.Result{}, f.err
	}
	return f.result, nil
}

func (f *fakeStore) HealthCheck(context.Context) error { return nil }

func (f *fakeStore) Stats(context.Context) (store.Stats, error) { return store.Stats{}, nil }

type fakeTranslator struct {
	result nl2sql.Result
	err    error
	calls  int
}

func (f *fakeTranslator) Translate(context.Context, nl2sql.Request) (nl2sql.Result, error) {
	f.calls++
	return f.result, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func cheapestRows() store.Result {
	return store.Result{
		Columns: []string{"product_name", "supplier", "supplier_country", "cost_per_kg", "cost_currency"},
		Rows: [][]any{
			{"Wheat Straw", "Riyadh Agri Supplies", "Saudi Arabia", 0.90, "SAR"},
		},
	}
}

func TestProcessQueryEnglishCheapest(t *testing.T) {
	st := &fakeStore{result: cheapestRows()}
	a := New(st, nil, testLogger())

	res := a.ProcessQuery(context.Background(), "Who is selling the cheapest Wheat Straw?")

	if !res.Success {
		t.Fatalf("Success = false, error = %q", res.Error)
	}
	if res.Language != "en" {
		t.Fatalf("Language = %q", res.Language)
	}
	if !strings.Contains(st.lastSQL, "ORDER BY cost_per_kg ASC") {
		t.Fatalf("SQL = %q", st.lastSQL)
	}
	if len(st.lastArgs) != 1 || st.lastArgs[0] != "%wheat straw%" {
		t.Fatalf("args = %v", st.lastArgs)
	}
	if !strings.Contains(res.Response, "Riyadh Agri Supplies") {
		t.Fatalf("Response = %q", res.Response)
	}
}

func TestProcessQueryArabicRoundTrip(t *testing.T) {
	st := &fakeStore{result: cheapestRows()}
	a := New(st, nil, testLogger())

	res := a.ProcessQuery(context.Background(), "من يبيع أرخص قش القمح؟")

	if !res.Success {
		t.Fatalf("Success = false, error = %q", res.Error)
	}
	if res.Language != "ar" {
		t.Fatalf("Language = %q", res.Language)
	}
	if len(st.lastArgs) != 1 || st.lastArgs[0] != "%wheat straw%" {
		t.Fatalf("args = %v", st.lastArgs)
	}
	if !strings.Contains(res.Response, "أرخص الموردين:") {
		t.Fatalf("Response missing arabic header: %q", res.Response)
	}
	if !strings.Contains(res.Response, "(السعودية)") {
		t.Fatalf("Response missing translated country: %q", res.Response)
	}
}

func TestProcessQueryEmptyResultsBothLocales(t *testing.T) {
	st := &fakeStore{result: store.Result{Columns: []string{"product_name"}}}
	a := New(st, nil, testLogger())

	res := a.ProcessQuery(context.Background(), "cheapest Triticale in Morocco")
	if !res.Success {
		t.Fatalf("Success = false")
	}
	if res.Response != "No results found" {
		t.Fatalf("english Response = %q", res.Response)
	}

	res = a.ProcessQuery(context.Background(), "أرخص دبس السكر")
	if res.Response != "لم يتم العثور على نتائج" {
		t.Fatalf("arabic Response = %q", res.Response)
	}
}

func TestProcessQueryExecutionError(t *testing.T) {
	st := &fakeStore{err: errors.New("table missing")}
	a := New(st, nil, testLogger())

	res := a.ProcessQuery(context.Background(), "cheapest barley")

	if res.Success {
		t.Fatal("Success = true, want false")
	}
	if res.Error != "table missing" {
		t.Fatalf("Error = %q", res.Error)
	}
	if !strings.HasPrefix(res.Response, "Database error:") {
		t.Fatalf("Response = %q", res.Response)
	}
}

func TestProcessQueryUsesProviderWhenAvailable(t *testing.T) {
	st := &fakeStore{result: cheapestRows()}
	tr := &fakeTranslator{result: nl2sql.Result{
		SQL:              "SELECT supplier FROM feed_products_sample LIMIT 3",
		ResponseTemplate: "Here are the cheapest suppliers:",
	}}
	a := New(st, tr, testLogger())

	res := a.ProcessQuery(context.Background(), "cheapest wheat straw")

	if tr.calls != 1 {
		t.Fatalf("translator calls = %d", tr.calls)
	}
	if st.lastSQL != "SELECT supplier FROM feed_products_sample LIMIT 3" {
		t.Fatalf("SQL = %q", st.lastSQL)
	}
	if len(st.lastArgs) != 0 {
		t.Fatalf("args = %v", st.lastArgs)
	}
	if !strings.HasPrefix(res.Response, "Here are the cheapest suppliers:") {
		t.Fatalf("Response = %q", res.Response)
	}
}

func TestProcessQueryFallsBackOnProviderError(t *testing.T) {
	st := &fakeStore{result: cheapestRows()}
	tr := &fakeTranslator{err: errors.New("rate limited")}
	a := New(st, tr, testLogger())

	res := a.ProcessQuery(context.Background(), "Who is selling the cheapest Wheat Straw?")

	if !res.Success {
		t.Fatalf("Success = false, error = %q", res.Error)
	}
	// Fallback compiles the rule-based query with bound args.
	if len(st.lastArgs) != 1 {
		t.Fatalf("args = %v", st.lastArgs)
	}
	if res.Error != "" {
		t.Fatalf("provider failure leaked to caller: %q", res.Error)
	}
}

func TestProcessQueryRecoversFromPanic(t *testing.T) {
	a := New(nil, nil, testLogger()) // nil store panics on Execute

	res := a.ProcessQuery(context.Background(), "cheapest barley")

	if res.Success {
		t.Fatal("Success = true after panic")
	}
	if res.Error != "internal error" {
		t.Fatalf("Error = %q", res.Error)
	}
	if res.Response == "" {
		t.Fatal("Response empty after panic")
	}
}
