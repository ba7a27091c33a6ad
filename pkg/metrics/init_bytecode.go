package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBytecodeMetrics() {
	r.FunctionsAnalyzedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ueasset_functions_analyzed_total",
			Help: "Total number of bytecode functions analyzed",
		},
		[]string{"status"},
	)

	r.FunctionBlocks = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ueasset_function_blocks",
			Help:    "Number of basic blocks per analyzed function",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	r.LoopTargetsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ueasset_loop_targets_total",
			Help: "Total number of blocks entered by a back edge",
		},
	)

	r.UnknownInstructionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ueasset_unknown_instructions_total",
			Help: "Instructions rendered without a template",
		},
		[]string{"token"},
	)
}
