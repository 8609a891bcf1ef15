// Package metrics defines and registers all custom Prometheus metrics for the
// storefront gateway. It is the single source of truth for metric names,
// labels, and help strings; registration happens at package init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupRunsTotal counts signup orchestration runs by the terminal stage they
// reached (idle for rejected input, signup_failed, login_failed, complete).
var SignupRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_runs_total",
		Help:      "Total number of signup orchestration runs, by terminal stage.",
	},
	[]string{"stage"},
)

// AvatarUploadsTotal counts best-effort avatar uploads.
// Label:
//   - result: "success" or "failure" (failures never surface to the user)
var AvatarUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "avatar_uploads_total",
		Help:      "Total number of avatar upload attempts, by result.",
	},
	[]string{"result"},
)

// GuardDecisionsTotal counts access guard evaluations at navigation time.
// Labels:
//   - role: the role the destination requires
//   - decision: "admit" or "deny"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of role guard evaluations, by required role and decision.",
	},
	[]string{"role", "decision"},
)

// UpstreamRequestDuration measures calls against the remote buy01 API.
// Labels:
//   - op: logical operation (e.g. "auth_login", "orders_dashboard")
//   - outcome: "ok", "network_error", or "http_<status>"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of requests against the remote storefront API.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op", "outcome"},
)
