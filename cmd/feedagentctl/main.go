package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/cli/feedagentctl"
)

func main() {
	timeout := parseDurationWithDefault(strings.TrimSpace(os.Getenv("FEEDAGENT_CLI_TIMEOUT")), 15*time.Second)
	options := feedagentctl.Options{
		BaseURL: envOr("FEEDAGENT_API_URL", "http://localhost:8080"),
		APIKey:  strings.TrimSpace(os.Getenv("FEEDAGENT_API_KEY")),
		Timeout: timeout,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	code := feedagentctl.Run(context.Background(), os.Args[1:], options)
	os.Exit(code)
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func parseDurationWithDefault(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
