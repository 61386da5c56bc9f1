// Package metrics defines and registers the custom Prometheus metrics for
// the clinic client. It is the single source of truth for metric names,
// labels, and help strings; registration happens via promauto at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vetclinic_client"

// LoginAttemptsTotal counts login submissions by outcome.
// Label:
//   - result: "success", "unauthorized", "network", "validation", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login submissions, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration submissions by outcome.
// Label:
//   - result: "success", "conflict", "validation", "network", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration submissions, by result.",
	},
	[]string{"result"},
)

// LogoutsTotal counts explicit logouts.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of explicit logouts.",
	},
)

// SessionRestoresTotal counts sessions restored from the persisted record
// at startup.
var SessionRestoresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of sessions restored from the persisted record.",
	},
)

// GuardDenialsTotal counts navigations rejected by the route guard.
// Label:
//   - reason: "unauthenticated" or "role_mismatch"
var GuardDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_denials_total",
		Help:      "Total number of navigations denied by the route guard.",
	},
	[]string{"reason"},
)
