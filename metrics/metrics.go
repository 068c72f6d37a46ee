// File: /metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal counts compute-and-record calls per protocol
	// adapter (rest, grpc, soap).
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carbontrack_calculations_total",
		Help: "Number of carbon calculations performed, by protocol",
	}, []string{"protocol"})

	// AdviceFallbacksTotal counts recommendation requests answered by the
	// local fallback instead of the upstream advice API.
	AdviceFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carbontrack_advice_fallbacks_total",
		Help: "Number of advice requests served by the rule-based fallback",
	})

	// RecordAppendErrors counts failed ledger writes.
	RecordAppendErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carbontrack_record_append_errors_total",
		Help: "Number of carbon record append failures",
	})
)
