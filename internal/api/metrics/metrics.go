// Package metrics defines and registers all custom Prometheus metrics for
// the menu API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Collectors are registered with the default registry at init time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "menu"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests short-circuited by the auth gates.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_token", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth gates.",
	},
	[]string{"reason"},
)

// RoleChangesTotal counts successful administrative role changes.
// Label:
//   - role: the role that was assigned
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of successful role changes, by assigned role.",
	},
	[]string{"role"},
)

// UsersCreatedTotal counts registered accounts.
// Label:
//   - role: the role the account was created with
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)
