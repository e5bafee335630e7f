// Package metrics defines all custom Prometheus metrics for the
// back-office client. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at package init via
// promauto; long-running embedders can expose or push them as they see
// fit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// APIRequestsTotal counts outbound ERP API requests.
// Labels:
//   - resource: logical resource ("auth", "products", "customers", "orders", "users")
//   - method: HTTP method
//   - outcome: "ok" or the failure class ("unauthorized", "forbidden",
//     "not_found", "conflict", "invalid", "transport", "server_error")
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of outbound ERP API requests, by resource, method and outcome.",
	},
	[]string{"resource", "method", "outcome"},
)

// APIRequestDuration measures the end-to-end latency of outbound requests.
// Label:
//   - resource: logical resource the request targeted
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of outbound ERP API requests from send to decoded response.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"resource"},
)

// SessionEventsTotal counts session lifecycle transitions.
// Label:
//   - event: "login", "restore", "logout", "login_failed", "restore_failed"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)
