package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FetchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "quote_fetch_latency_seconds",
		Help: "Latency of quote provider downloads",
	}, []string{"source"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aligned_table_cache_hits_total",
		Help: "Aligned-table cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aligned_table_cache_misses_total",
		Help: "Aligned-table cache misses",
	})

	AnalysisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_requests_total",
		Help: "Analysis requests by contract and outcome",
	}, []string{"contract", "status"})
)
