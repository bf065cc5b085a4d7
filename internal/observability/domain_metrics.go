package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedagent_queries_total",
			Help: "Total number of natural language queries processed.",
		},
		[]string{"intent", "language"},
	)
	queryDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedagent_query_duration_seconds",
			Help:    "End to end query processing latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	providerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedagent_provider_requests_total",
			Help: "AI provider translation attempts by outcome.",
		},
		[]string{"outcome"},
	)
	providerFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedagent_provider_fallback_total",
			Help: "Queries answered by the rule compiler after a provider failure.",
		},
	)
	emptyResultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedagent_empty_results_total",
			Help: "Queries that produced no matching rows.",
		},
	)
	executionFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "feedagent_execution_failures_total",
			Help: "Dataset query execution failures.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		queriesTotal,
		queryDurationSeconds,
		providerRequestsTotal,
		providerFallbackTotal,
		emptyResultsTotal,
		executionFailuresTotal,
	)
}

func ObserveQuery(intent, language string, elapsed time.Duration, emptyResult bool) {
	queriesTotal.WithLabelValues(intent, language).Inc()
	queryDurationSeconds.Observe(elapsed.Seconds())
	if emptyResult {
		emptyResultsTotal.Inc()
	}
}

func ObserveProviderRequest(outcome string) {
	providerRequestsTotal.WithLabelValues(outcome).Inc()
}

func IncrementProviderFallback() {
	providerFallbackTotal.Inc()
}

func IncrementExecutionFailure() {
	executionFailuresTotal.Inc()
}
