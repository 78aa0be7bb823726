// Package metrics defines and registers all custom Prometheus metrics for
// the storefront gateway. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// PurchasesTotal counts purchase attempts by outcome.
// Label:
//   - result: "confirmed", "insufficient_stock", "unauthorized",
//     "invalid_quantity", "rejected", "unreachable"
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, by outcome.",
	},
	[]string{"result"},
)

// CatalogQueriesTotal counts catalog reads by filter kind and outcome.
// Labels:
//   - filter: "none", "term", "category"
//   - result: "ok" or "error"
var CatalogQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_queries_total",
		Help:      "Total number of catalog queries, by filter kind and outcome.",
	},
	[]string{"filter", "result"},
)

// AdminSavesTotal counts admin catalog mutations.
// Labels:
//   - kind: "create" or "update"
//   - result: "ok" or "error"
var AdminSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_saves_total",
		Help:      "Total number of admin catalog saves, by kind and outcome.",
	},
	[]string{"kind", "result"},
)

// RemoteRequestDuration observes the latency of calls to the remote user,
// catalog and order services.
// Labels:
//   - code: HTTP status code of the response
//   - method: HTTP method of the request
var RemoteRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_request_duration_seconds",
		Help:      "Duration of HTTP requests to the remote services.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"code", "method"},
)

// SessionEventsTotal counts session lifecycle transitions.
// Label:
//   - event: "login", "login_rejected", "logout"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)
