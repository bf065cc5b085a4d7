package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/agent"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/auth"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/config"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/store"
)

func mapLookup(values map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

type stubAgent struct {
	result       agent.Result
	lastQuestion string
}

func (s *stubAgent) ProcessQuery(_ context.Context, question string) agent.Result {
	s.lastQuestion = question
	return s.result
}

// stubStore routes Execute calls on a SQL substring so multi-query
// handlers can be exercised without a database.
type stubStore struct {
	results   map[string]store.Result
	stats     store.Stats
	healthErr error
	execErr   error
	lastSQL   string
	lastArgs  []any
}

func (s *stubStore) Execute(_ context.Context, sqlText string, args ...any) (store.Result, error) {
	s.lastSQL = sqlText
	s.lastArgs = args
	if s.execErr != nil {
		return store.Result{}, s.execErr
	}
	for fragment, result := range s.results {
		if strings.Contains(sqlText, fragment) {
			return result, nil
		}
	}
	return store.Result{}, nil
}

func (s *stubStore) HealthCheck(context.Context) error { return s.healthErr }

func (s *stubStore) Stats(context.Context) (store.Stats, error) { return s.stats, nil }

func testConfig(t *testing.T, overrides map[string]string) config.Config {
	t.Helper()
	cfg, err := config.Load("feedagent-api", mapLookup(overrides))
	if err != nil {
		t.Fatalf("config load failed: %v", err)
	}
	return cfg
}

func TestHealthEndpoint(t *testing.T) {
	h := NewHandler(testConfig(t, nil), Dependencies{Store: &stubStore{}, AIEnabled: true})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("json decode failed: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("status = %v", body["status"])
	}
	if body["database_connected"] != true || body["ai_model_available"] != true {
		t.Fatalf("body = %v", body)
	}
}

func TestHealthEndpointDegradedWithoutDatabase(t *testing.T) {
	h := NewHandler(testConfig(t, nil), Dependencies{Store: &stubStore{healthErr: errors.New("closed")}})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("json decode failed: %v", err)
	}
	if body["status"] != "degraded" {
		t.Fatalf("status = %v", body["status"])
	}
}

func TestReadyEndpointReturns503WhenDependencyFails(t *testing.T) {
	h := NewHandler(testConfig(t, nil), Dependencies{
		Readiness: func(context.Context) error { return errors.New("dependency down") },
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/ready", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestProtectedRouteRequiresAuth(t *testing.T) {
	cfg := testConfig(t, map[string]string{"FEEDAGENT_AUTH_REQUIRED": "true"})
	validator, err := auth.NewStaticAPIKeyValidator("k1:reader")
	if err != nil {
		t.Fatalf("validator setup failed: %v", err)
	}

	h := NewHandler(cfg, Dependencies{
		AuthMiddleware: auth.Middleware(nil, validator),
		Store:          &stubStore{},
	})

	unauthResp := httptest.NewRecorder()
	h.ServeHTTP(unauthResp, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	if unauthResp.Code != http.StatusUnauthorized {
		t.Fatalf("unauth status = %d", unauthResp.Code)
	}

	authReq := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	authReq.Header.Set("X-API-Key", "k1")
	authResp := httptest.NewRecorder()
	h.ServeHTTP(authResp, authReq)
	if authResp.Code != http.StatusOK {
		t.Fatalf("auth status = %d", authResp.Code)
	}
}

func TestExamplesEndpointIsPublic(t *testing.T) {
	cfg := testConfig(t, map[string]string{"FEEDAGENT_AUTH_REQUIRED": "true"})
	validator, err := auth.NewStaticAPIKeyValidator("k1:reader")
	if err != nil {
		t.Fatalf("validator setup failed: %v", err)
	}

	h := NewHandler(cfg, Dependencies{AuthMiddleware: auth.Middleware(nil, validator)})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/examples", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var body struct {
		Examples []exampleQuery `json:"examples"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("json decode failed: %v", err)
	}
	if len(body.Examples) == 0 {
		t.Fatal("expected example queries")
	}
	for _, example := range body.Examples {
		if example.English == "" || example.Arabic == "" || example.Category == "" {
			t.Fatalf("incomplete example: %+v", example)
		}
	}
}

func TestCombineReadinessChecksStopsOnFirstFailure(t *testing.T) {
	order := make([]int, 0, 3)
	combined := CombineReadinessChecks(
		func(_ context.Context) error {
			order = append(order, 1)
			return nil
		},
		func(_ context.Context) error {
			order = append(order, 2)
			return errors.New("boom")
		},
		func(_ context.Context) error {
			order = append(order, 3)
			return nil
		},
	)

	if err := combined(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("execution order = %#v", order)
	}
}
