// Package metrics defines and registers all custom Prometheus metrics for
// the workforce scheduling API. It is the single source of truth for metric
// names, labels, and help strings.
//
// The metrics register themselves with the default Prometheus registry at
// package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workforce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (wrong password, unknown email, inactive account)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// AccountsCreatedTotal counts newly created accounts (admin-driven creation
// and public self-registration alike).
// Label:
//   - role: the role assigned at creation
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by assigned role.",
	},
	[]string{"role"},
)

// AccountLifecycleTotal counts activation-state transitions that actually
// changed state (idempotent no-ops are not counted).
// Label:
//   - action: "activate" or "deactivate"
var AccountLifecycleTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_lifecycle_total",
		Help:      "Total number of account activation-state changes, by action.",
	},
	[]string{"action"},
)

// RoleChangesTotal counts role changes applied by admins.
// Label:
//   - to_role: the role the account was moved to
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of account role changes, by target role.",
	},
	[]string{"to_role"},
)

// ── Shift metrics ─────────────────────────────────────────────────────────────

// ShiftsCreatedTotal counts newly created shifts.
var ShiftsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shifts_created_total",
		Help:      "Total number of shifts created.",
	},
)
