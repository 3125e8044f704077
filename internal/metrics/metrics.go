// Package metrics exposes the service's Prometheus collectors. Collectors
// are registered on the default registry; /metrics serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_bookings_created_total",
		Help: "Bookings placed (pending holds).",
	})
	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_bookings_confirmed_total",
		Help: "Bookings confirmed within the hold window.",
	})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_bookings_cancelled_total",
		Help: "Bookings cancelled explicitly.",
	})
	BookingsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_bookings_expired_total",
		Help: "Pending holds released by the expiry sweep.",
	})
	SlotsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_slots_generated_total",
		Help: "Slots materialized by bulk generation.",
	})
	CheckInScans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academy_checkin_scans_total",
		Help: "Player scans by resulting action.",
	}, []string{"action"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academy_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "academy_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
