package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/agent"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/api"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/auth"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/config"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/nl2sql"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/observability"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/seed"
	duckdbstore "github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/store/duckdb"
)

func main() {
	cfg, err := config.LoadFromEnv("feedagent-api")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stdout)

	dataset, err := duckdbstore.Open(duckdbstore.Config{Path: cfg.Dataset.Path})
	if err != nil {
		logger.Error("failed to open dataset", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = dataset.Close() }()

	if cfg.Dataset.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		opts := seed.Options{Recreate: true}
		if cfg.SeedSource.PostgresDSN != "" {
			products, err := seed.ImportFromPostgres(seedCtx, cfg.SeedSource.PostgresDSN)
			if err != nil {
				cancel()
				logger.Error("failed to import products from postgres", slog.Any("error", err))
				os.Exit(1)
			}
			opts.Products = products
		}
		if err := seed.Apply(seedCtx, dataset.DB(), logger, opts); err != nil {
			cancel()
			logger.Error("failed to seed dataset", slog.Any("error", err))
			os.Exit(1)
		}
		cancel()
	}

	var translator nl2sql.Translator
	if cfg.AI.Enabled {
		translator, err = nl2sql.NewOpenAITranslator(nl2sql.OpenAIConfig{
			BaseURL:     cfg.AI.BaseURL,
			APIKey:      cfg.AI.APIKey,
			Model:       cfg.AI.Model,
			Temperature: cfg.AI.Temperature,
			Timeout:     cfg.AI.Timeout,
		})
		if err != nil {
			logger.Error("failed to initialize query translator", slog.Any("error", err))
			os.Exit(1)
		}
	}

	deps := api.Dependencies{
		Logger:            logger,
		Agent:             agent.New(dataset, translator, logger),
		Store:             dataset,
		AIEnabled:         translator != nil,
		QueryTimeout:      cfg.Dataset.QueryTimeout,
		Readiness:         api.CheckDatasetStore(dataset),
		DependencyTimeout: time.Second,
	}
	if cfg.Auth.Required {
		validator, err := auth.NewStaticAPIKeyValidator(cfg.Auth.StaticKeys)
		if err != nil {
			logger.Error("failed to parse static auth keys", slog.Any("error", err))
			os.Exit(1)
		}
		deps.AuthMiddleware = auth.Middleware(logger, validator)
	}

	handler := api.NewHandler(cfg, deps)
	server := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting api server", slog.String("addr", cfg.HTTP.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down api server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		_ = server.Close()
		os.Exit(1)
	}
}
