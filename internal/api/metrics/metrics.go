// Package metrics defines and registers all custom Prometheus metrics for the
// MathQuest API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mathquest"

// ── Auth metrics ──────────────────────────────────────────────────────────────

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

// TokenVerificationsTotal counts bearer-token verifications performed by the
// request authenticator.
// Label:
//   - result: "ok", "invalid", "expired", "revoked", "unresolved"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts.
// Label:
//   - role: "admin", "teacher", "student"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// RolesSeededTotal counts role reference rows created by the startup seeder.
// Stays at zero on restarts once every role row exists.
// Label:
//   - role: "admin", "teacher", "student"
var RolesSeededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_seeded_total",
		Help:      "Total number of role rows created at startup, by role.",
	},
	[]string{"role"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// SubmissionsTotal counts activity score submissions.
// Label:
//   - kind: the activity kind ("quiz", "worksheet", "challenge")
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of activity submissions, by activity kind.",
	},
	[]string{"kind"},
)
