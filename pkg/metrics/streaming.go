package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/streamta/pkg/registry"
	"github.com/c9s/streamta/pkg/types"
)

var BarsTotalMetrics = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "streamta_bars_total",
		Help: "number of bars read from the source",
	})

var IndicatorUpdatesMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "streamta_indicator_updates_total",
		Help: "number of updates pushed into each indicator",
	}, []string{"indicator"})

var UpdateDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "streamta_update_duration_seconds",
		Help:    "time spent in a single indicator update",
		Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
	}, []string{"indicator"})

func init() {
	prometheus.MustRegister(BarsTotalMetrics, IndicatorUpdatesMetrics, UpdateDurationMetrics)
}

type instrumented[T any] struct {
	registry.Runner[T]

	label    string
	updates  prometheus.Counter
	duration prometheus.Observer
}

// Instrument wraps the runner so that every Push is counted and timed under its label.
func Instrument[T any](r registry.Runner[T]) registry.Runner[T] {
	label := r.String()
	return &instrumented[T]{
		Runner:   r,
		label:    label,
		updates:  IndicatorUpdatesMetrics.WithLabelValues(label),
		duration: UpdateDurationMetrics.WithLabelValues(label),
	}
}

func (r *instrumented[T]) Push(bar *types.Bar[T]) []string {
	start := time.Now()
	cells := r.Runner.Push(bar)
	r.duration.Observe(time.Since(start).Seconds())
	r.updates.Inc()
	return cells
}
