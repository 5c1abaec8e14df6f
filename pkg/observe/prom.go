package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PromObserver exports computation counts and durations as Prometheus
// metrics.
type PromObserver struct {
	computations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewPromObserver registers the metrics with reg; a nil reg uses the
// default registerer.
func NewPromObserver(reg prometheus.Registerer) *PromObserver {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &PromObserver{
		computations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indicator_computations_total",
				Help: "Total number of indicator computations",
			},
			[]string{"indicator", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "indicator_computation_duration_seconds",
				Help: "Duration of indicator computations in seconds",
			},
			[]string{"indicator"},
		),
	}
}

// Observe records one computation.
func (p *PromObserver) Observe(rec Record) {
	outcome := "ok"
	if rec.Err != nil {
		outcome = "error"
	}
	p.computations.WithLabelValues(rec.Indicator, outcome).Inc()
	p.duration.WithLabelValues(rec.Indicator).Observe(rec.Elapsed.Seconds())
}
