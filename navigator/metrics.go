// SPDX-License-Identifier: MIT
package navigator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query results used as the "result" label.
const (
	ResultOK               = "ok"
	ResultBuildingNotFound = "building_not_found"
	ResultNoMeetingPoint   = "no_meeting_point"
	ResultError            = "error"
)

// Metrics holds the Prometheus collectors of a Navigator.
type Metrics struct {
	// queries counts route queries by result
	queries *prometheus.CounterVec

	// duration tracks route query latency
	duration prometheus.Histogram

	// candidates tracks how many buildings a query evaluated
	candidates prometheus.Histogram

	// legMiles tracks the walking distance of each accepted leg
	legMiles prometheus.Histogram
}

// NewMetrics registers the navigator collectors on reg.
// Use a fresh prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "campusnav_route_queries_total",
			Help: "Total route queries by result",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "campusnav_route_query_duration_seconds",
			Help:    "Route query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
		}),
		candidates: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "campusnav_meeting_candidates_tried",
			Help:    "Number of candidate buildings evaluated per query",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100},
		}),
		legMiles: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "campusnav_route_leg_miles",
			Help:    "Walking distance of each route leg in miles",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
	}
}

func (m *Metrics) observe(result string, seconds float64, tried int, miles ...float64) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(result).Inc()
	m.duration.Observe(seconds)
	if tried > 0 {
		m.candidates.Observe(float64(tried))
	}
	for _, mi := range miles {
		m.legMiles.Observe(mi)
	}
}
