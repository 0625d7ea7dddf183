// Package metrics defines and registers the custom Prometheus metrics of the
// identity service. Metrics are registered with the default registry on
// package initialisation via promauto.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "identity"

// Outcome label values besides the domain error kinds.
const OutcomeSuccess = "success"

// UserOperationsTotal counts use case invocations.
// Labels:
//   - operation: "create_user", "get_user", "update_user" or "import_user"
//   - outcome: "success" or the error kind ("not_found", "already_exists", "invalid_data", "unknown")
var UserOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_operations_total",
		Help:      "Total number of user operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// UserOperationDuration measures how long a single use case invocation takes.
var UserOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "user_operation_duration_seconds",
		Help:      "Duration of user operations from request decode to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ImportQueueDepth tracks jobs waiting in each import dispatcher worker channel.
var ImportQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "import_queue_depth",
		Help:      "Current number of import jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ObserveUserOperation records one finished operation.
func ObserveUserOperation(operation, outcome string, elapsed time.Duration) {
	UserOperationsTotal.WithLabelValues(operation, outcome).Inc()
	UserOperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
