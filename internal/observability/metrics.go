package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain metrics, registered on the default Prometheus registry and exposed
// through the /metrics endpoint alongside the HTTP middleware metrics.
var (
	LLMRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketforge_llm_requests_total",
		Help: "Completion requests sent to the upstream provider, by model",
	}, []string{"model"})

	LLMErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketforge_llm_errors_total",
		Help: "Failed completion requests, by model",
	}, []string{"model"})

	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketforge_cache_requests_total",
		Help: "Cache lookups for formatted content records, by result (hit/miss)",
	}, []string{"result"})

	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketforge_redis_errors_total",
		Help: "Redis command failures, by command",
	}, []string{"command"})
)
