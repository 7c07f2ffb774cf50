// Package metrics holds the Prometheus collectors for topic resolution and
// persistence.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector the service exports. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	// resolverOutcomes counts terminal resolver states.
	// Labels: state (resolved, degraded), reason (primary, search, empty_query, no_results, no_extract, fault)
	resolverOutcomes *prometheus.CounterVec

	// resolverStageDuration measures each external lookup.
	// Labels: stage (summary, search, search_summary)
	resolverStageDuration *prometheus.HistogramVec

	// topicsAdded counts AddTopic results.
	// Labels: status (ok, degraded, failed)
	topicsAdded *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		resolverOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "topiclog",
			Subsystem: "resolver",
			Name:      "outcomes_total",
			Help:      "Resolver terminal states by state and reason",
		}, []string{"state", "reason"}),

		resolverStageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "topiclog",
			Subsystem: "resolver",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each knowledge source lookup",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
		}, []string{"stage"}),

		topicsAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "topiclog",
			Name:      "topics_added_total",
			Help:      "AddTopic results by status",
		}, []string{"status"}),
	}
}

// ResolverOutcome records one terminal resolver state.
func (m *Metrics) ResolverOutcome(state, reason string) {
	if m == nil {
		return
	}
	m.resolverOutcomes.WithLabelValues(state, reason).Inc()
}

// ResolverStage records the duration of one lookup stage.
func (m *Metrics) ResolverStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.resolverStageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// TopicAdded records one AddTopic result.
func (m *Metrics) TopicAdded(status string) {
	if m == nil {
		return
	}
	m.topicsAdded.WithLabelValues(status).Inc()
}
