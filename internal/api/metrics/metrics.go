// Package metrics defines and registers all custom Prometheus metrics for
// the CRM API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success", "not_found", "wrong_credential", "malformed_email",
//     "rate_limited", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecordWritesTotal counts create/update/delete operations per collection.
// Labels:
//   - collection: "clients", "orders", or "users"
//   - op: "create", "update", or "delete"
var RecordWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_writes_total",
		Help:      "Total number of successful record writes, by collection and operation.",
	},
	[]string{"collection", "op"},
)

// DashboardQueryDuration measures the latency of the dashboard aggregate query.
var DashboardQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_query_duration_seconds",
		Help:      "Duration of the dashboard stats aggregation.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ActiveSubscriptions tracks open live-collection subscriptions.
// Label:
//   - collection: the watched collection name
var ActiveSubscriptions = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_subscriptions",
		Help:      "Currently open live collection subscriptions, by collection.",
	},
	[]string{"collection"},
)

// ExportsTotal counts CSV exports by collection.
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV exports served, by collection.",
	},
	[]string{"collection"},
)
