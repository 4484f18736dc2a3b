package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of advent_parts_total.
const (
	OutcomeOK = "ok"
)

// Metrics records run activity as Prometheus collectors.
type Metrics struct {
	Modules      *prometheus.CounterVec
	Parts        *prometheus.CounterVec
	PartDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Modules: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advent_modules_total",
				Help: "Total number of puzzle modules started",
			},
			[]string{"year", "variant"},
		),
		Parts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advent_parts_total",
				Help: "Total number of puzzle parts run, by outcome",
			},
			[]string{"year", "day", "part", "outcome"},
		),
		PartDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advent_part_duration_seconds",
				Help:    "Duration of puzzle part executions",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"year", "day", "part"},
		),
	}

	for _, c := range []prometheus.Collector{m.Modules, m.Parts, m.PartDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnModuleStart: func(ctx context.Context, e *domain.ModuleEvent) {
			m.Modules.WithLabelValues(strconv.Itoa(e.Descriptor.Year), string(e.Variant)).Inc()
		},
		OnPartComplete: func(ctx context.Context, e *domain.PartEvent) {
			r := e.Result
			year, day, part := strconv.Itoa(r.Year), strconv.Itoa(r.Day), strconv.Itoa(r.Part)

			outcome := OutcomeOK
			if !r.OK() {
				outcome = string(r.Kind)
			}
			m.Parts.WithLabelValues(year, day, part, outcome).Inc()
			m.PartDuration.WithLabelValues(year, day, part).Observe(r.Duration.Seconds())
		},
	}
}
