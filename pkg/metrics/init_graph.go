package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphsCompactedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ueasset_graphs_compacted_total",
			Help: "Total number of node graphs compacted",
		},
	)

	r.NodesVisibleTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ueasset_nodes_visible_total",
			Help: "Nodes kept in compacted graphs",
		},
	)

	r.NodesElidedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ueasset_nodes_elided_total",
			Help: "Nodes removed from compacted graphs, by elision kind",
		},
		[]string{"kind"},
	)
}
