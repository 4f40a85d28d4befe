package observability

import (
	"context"

	"github.com/aretw0/fsa/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Result label values of fsa_decisions_total.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics holds the Prometheus collectors of the decision pipeline.
type Metrics struct {
	Decisions *prometheus.CounterVec
	Steps     prometheus.Histogram
	Duration  prometheus.Histogram
	CacheHits prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsa_decisions_total",
				Help: "Total number of acceptance decisions",
			},
			[]string{"result"},
		),
		Steps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fsa_decision_steps",
				Help:    "Transition lookups performed per decision",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fsa_decision_duration_seconds",
				Help:    "Duration of acceptance decisions",
				Buckets: prometheus.DefBuckets,
			},
		),
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "fsa_cache_hits_total",
				Help: "Decisions answered from the decision cache",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Decisions, m.Steps, m.Duration, m.CacheHits)
	}
	return m
}

// Hooks returns decision hooks that feed the collectors.
// Cached decisions count as decisions and cache hits, but not as search steps.
func (m *Metrics) Hooks() domain.DecisionHooks {
	return domain.DecisionHooks{
		OnDecisionEnd: func(_ context.Context, e *domain.DecisionEvent) {
			switch {
			case e.Err != nil:
				m.Decisions.WithLabelValues(ResultError).Inc()
				return
			case e.Accepted:
				m.Decisions.WithLabelValues(ResultAccepted).Inc()
			default:
				m.Decisions.WithLabelValues(ResultRejected).Inc()
			}

			m.Duration.Observe(e.Duration.Seconds())
			if e.Cached {
				m.CacheHits.Inc()
				return
			}
			m.Steps.Observe(float64(e.Steps))
		},
	}
}
