package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	ToolCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fieldops_tool_calls_total", Help: "Tool calls by tool name and outcome"},
		[]string{"tool", "outcome"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fieldops_http_requests_total", Help: "HTTP requests by method and status"},
		[]string{"method", "status"},
	)
	RateLimitRejects = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "fieldops_rate_limit_rejects_total", Help: "Requests rejected by rate limiter"},
	)
)

// Handler exposes /metrics HTTP handler with a singleton registry.
func Handler() http.Handler {
	once.Do(func() {
		prometheus.MustRegister(
			ToolCalls,
			HTTPRequests,
			RateLimitRejects,
		)
	})
	return promhttp.Handler()
}
