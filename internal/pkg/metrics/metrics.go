// Package metrics defines and registers all custom Prometheus metrics for the
// sample app. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sampleapp"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginAttemptsTotal counts password login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of password login attempts, by result.",
	},
	[]string{"result"},
)

// RememberedLoginsTotal counts logins that requested a remember-me cookie.
var RememberedLoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remembered_logins_total",
		Help:      "Total number of logins that issued remember-me cookies.",
	},
)

// LogoutsTotal counts explicit logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logouts.",
	},
)

// GateRejectionsTotal counts requests turned away by the login or admin gate.
// Label:
//   - gate: "login" or "admin"
var GateRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_rejections_total",
		Help:      "Total number of requests rejected by an access gate.",
	},
	[]string{"gate"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuthEventsTotal counts audit events persisted by the dispatcher.
// Label:
//   - method: "password", "remember" or "logout"
var AuthEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_total",
		Help:      "Total number of authentication audit events persisted, by method.",
	},
	[]string{"method"},
)

// AuthEventsDroppedTotal counts audit events dropped because a worker queue was full.
var AuthEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_events_dropped_total",
		Help:      "Total number of authentication audit events dropped on a full queue.",
	},
)

// AuthEventsQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuthEventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "auth_events_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Social metrics ────────────────────────────────────────────────────────────

// RelationshipChangesTotal counts follow graph mutations.
// Label:
//   - action: "follow" or "unfollow"
var RelationshipChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "relationship_changes_total",
		Help:      "Total number of follow and unfollow operations.",
	},
	[]string{"action"},
)

// FeedDuration measures how long composing one feed page takes.
var FeedDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_duration_seconds",
		Help:      "Duration of feed composition, from owner-set lookup to page fetch.",
		Buckets:   prometheus.DefBuckets,
	},
)

// MicropostsCreatedTotal counts newly created microposts.
var MicropostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "microposts_created_total",
		Help:      "Total number of microposts created.",
	},
)
