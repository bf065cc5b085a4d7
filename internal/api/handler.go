package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/agent"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/config"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/observability"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/store"
)

type ReadinessCheck func(ctx context.Context) error

// QueryProcessor is the piece of the agent the HTTP layer needs.
type QueryProcessor interface {
	ProcessQuery(ctx context.Context, question string) agent.Result
}

type Dependencies struct {
	Logger            *slog.Logger
	Readiness         ReadinessCheck
	AuthMiddleware    func(http.Handler) http.Handler
	DependencyTimeout time.Duration
	Agent             QueryProcessor
	Store             store.Store
	AIEnabled         bool
	QueryTimeout      time.Duration
}

func NewHandler(cfg config.Config, deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/health", func(w http.ResponseWriter, r *http.Request) {
		handleHealth(cfg, deps, w, r)
	})

	mux.HandleFunc("GET /v1/ready", func(w http.ResponseWriter, r *http.Request) {
		if deps.Readiness == nil {
			writeJSON(w, http.StatusOK, map[string]any{"status": "ready"})
			return
		}
		timeout := deps.DependencyTimeout
		if timeout <= 0 {
			timeout = 2 * time.Second
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		if err := deps.Readiness(ctx); err != nil {
			writeError(r.Context(), w, http.StatusServiceUnavailable, "NOT_READY", err.Error(), true, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"status": "ready"})
	})

	mux.Handle("GET /v1/metrics", promhttp.Handler())

	mux.HandleFunc("GET /v1/examples", func(w http.ResponseWriter, r *http.Request) {
		handleExamples(w, r)
	})

	protected := http.NewServeMux()
	protected.HandleFunc("POST /v1/query", func(w http.ResponseWriter, r *http.Request) {
		handleQuery(deps, w, r)
	})
	protected.HandleFunc("GET /v1/query", func(w http.ResponseWriter, r *http.Request) {
		handleQueryGet(deps, w, r)
	})
	protected.HandleFunc("GET /v1/stats", func(w http.ResponseWriter, r *http.Request) {
		handleStats(deps, w, r)
	})
	protected.HandleFunc("GET /v1/products/types", func(w http.ResponseWriter, r *http.Request) {
		handleProductTypes(deps, w, r)
	})
	protected.HandleFunc("GET /v1/products/countries", func(w http.ResponseWriter, r *http.Request) {
		handleCountries(deps, w, r)
	})
	protected.HandleFunc("GET /v1/products/suppliers", func(w http.ResponseWriter, r *http.Request) {
		handleSuppliers(deps, w, r)
	})
	protected.HandleFunc("POST /v1/products/search", func(w http.ResponseWriter, r *http.Request) {
		handleProductSearch(deps, w, r)
	})
	protected.HandleFunc("GET /v1/products/{product}/history", func(w http.ResponseWriter, r *http.Request) {
		handlePriceHistory(deps, w, r)
	})

	var protectedHandler http.Handler = protected
	if cfg.Auth.Required {
		if deps.AuthMiddleware == nil {
			if deps.Logger != nil {
				deps.Logger.Error("auth required but auth middleware missing")
			}
			protectedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeError(r.Context(), w, http.StatusInternalServerError, "AUTH_MIDDLEWARE_MISSING", "auth middleware is required by configuration", false, nil)
			})
		} else {
			protectedHandler = deps.AuthMiddleware(protectedHandler)
		}
	}
	mux.Handle("POST /v1/query", protectedHandler)
	mux.Handle("GET /v1/query", protectedHandler)
	mux.Handle("GET /v1/stats", protectedHandler)
	mux.Handle("GET /v1/products/types", protectedHandler)
	mux.Handle("GET /v1/products/countries", protectedHandler)
	mux.Handle("GET /v1/products/suppliers", protectedHandler)
	mux.Handle("POST /v1/products/search", protectedHandler)
	mux.Handle("GET /v1/products/{product}/history", protectedHandler)

	middlewares := []func(http.Handler) http.Handler{
		observability.TraceMiddleware,
		observability.MetricsMiddleware,
	}
	if deps.Logger != nil {
		middlewares = append(middlewares, observability.LoggingMiddleware(deps.Logger))
	}
	return chain(mux, middlewares...)
}

func handleHealth(cfg config.Config, deps Dependencies, w http.ResponseWriter, r *http.Request) {
	databaseConnected := false
	if deps.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		databaseConnected = deps.Store.HealthCheck(ctx) == nil
	}
	status := "healthy"
	if !databaseConnected {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":             status,
		"service":            cfg.Service.Name,
		"database_connected": databaseConnected,
		"ai_model_available": deps.AIEnabled,
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	})
}

func CheckDatasetStore(st store.Store) ReadinessCheck {
	return func(ctx context.Context) error {
		if st == nil {
			return errors.New("dataset store is not configured")
		}
		return st.HealthCheck(ctx)
	}
}

func CheckObjectStoreConfig(cfg config.Config) ReadinessCheck {
	return func(_ context.Context) error {
		if cfg.ObjectStore.Endpoint == "" {
			return errors.New("object store endpoint is not configured")
		}
		if cfg.ObjectStore.Bucket == "" {
			return errors.New("object store bucket is not configured")
		}
		return nil
	}
}

func CombineReadinessChecks(checks ...ReadinessCheck) ReadinessCheck {
	filtered := make([]ReadinessCheck, 0, len(checks))
	for _, check := range checks {
		if check != nil {
			filtered = append(filtered, check)
		}
	}
	return func(ctx context.Context) error {
		for _, check := range filtered {
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

func chain(base http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	wrapped := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}
	return wrapped
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, code, message string, retryable bool, extra map[string]any) {
	writeJSON(w, status, map[string]any{
		"error_code": code,
		"message":    message,
		"retryable":  retryable,
		"context":    extra,
		"trace_id":   observability.TraceIDFromContext(ctx),
	})
}
