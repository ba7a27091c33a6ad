package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPinMetrics() {
	r.PinsDecodedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ueasset_pins_decoded_total",
			Help: "Total number of pins decoded from node extras",
		},
	)

	r.PinDecodeFailuresTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ueasset_pin_decode_failures_total",
			Help: "Pin blocks that failed to decode, by the field being read",
		},
		[]string{"field"},
	)

	r.NodesWithoutPinsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ueasset_nodes_without_pins_total",
			Help: "Graph nodes whose export carried no pin data",
		},
	)
}
