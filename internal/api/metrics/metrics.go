// Package metrics defines and registers all custom Prometheus metrics for
// the Rateorant client gateway. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rateorant"

// ── Backend call metrics ──────────────────────────────────────────────────────

// BackendRequestsTotal counts calls made to the remote Rateorant backend.
// Labels:
//   - resource: the backend resource ("restaurants", "reviews", "favorites",
//     "categories", "notifications", "users", "auth")
//   - outcome: "ok" or "error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of HTTP calls to the remote backend, by resource and outcome.",
	},
	[]string{"resource", "outcome"},
)

// BackendRequestDuration measures backend call latency per resource.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of HTTP calls to the remote backend.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"resource"},
)

// CategoryFallbackTotal counts category-scoped listing probes.
// Label:
//   - result: "hit" (a candidate endpoint parsed to a list) or "exhausted"
//     (every candidate failed; the list degraded to empty)
var CategoryFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_fallback_total",
		Help:      "Total number of category-listing fallback probes, by result (hit/exhausted).",
	},
	[]string{"result"},
)

// ── View metrics ──────────────────────────────────────────────────────────────

// DashboardLoadsTotal counts dashboard renders by role.
var DashboardLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_loads_total",
		Help:      "Total number of dashboard loads, by role.",
	},
	[]string{"role"},
)

// NotificationsUnread tracks the unread count last reported to an owner.
var NotificationsUnread = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_unread",
		Help:      "Unread notification count in the most recent indicator refresh.",
	},
)

// UserCacheTotal counts user-profile cache lookups.
// Label:
//   - result: "hit" or "miss"
var UserCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_cache_total",
		Help:      "Total number of user-profile cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
