// Package metrics defines and registers all custom Prometheus metrics for the
// BookingIn API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init through promauto; HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookingin"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts registered.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests stopped by the auth middleware.
// Label:
//   - reason: "unauthenticated", "invalid_token", "revoked_token" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Catalogue metrics ─────────────────────────────────────────────────────────

// PropertiesCreatedTotal counts newly created properties.
// Label:
//   - type: free-form property type (e.g. "hotel", "villa")
var PropertiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "properties_created_total",
		Help:      "Total number of properties created, by type.",
	},
	[]string{"type"},
)

// RoomsCreatedTotal counts newly created rooms.
var RoomsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Total number of rooms created.",
	},
)

// ReviewsCreatedTotal counts submitted reviews.
// Label:
//   - rating: "1" … "5"
var ReviewsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews submitted, by rating.",
	},
	[]string{"rating"},
)
