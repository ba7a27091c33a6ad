package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSystemMetrics() {
	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ueasset_analysis_duration_seconds",
			Help:    "Time spent analyzing one unit of work",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"component"},
	)

	r.JobsInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ueasset_jobs_in_flight",
			Help: "Analysis jobs currently running in the worker pool",
		},
	)

	r.GoRoutines = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ueasset_goroutines",
			Help: "Number of goroutines",
		},
	)

	r.MemoryAllocBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ueasset_memory_alloc_bytes",
			Help: "Bytes of allocated heap objects",
		},
	)
}
