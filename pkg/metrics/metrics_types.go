package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the analyzer
type Registry struct {
	// Bytecode Metrics
	FunctionsAnalyzedTotal   *prometheus.CounterVec
	FunctionBlocks           prometheus.Histogram
	LoopTargetsTotal         prometheus.Counter
	UnknownInstructionsTotal *prometheus.CounterVec

	// Pin Metrics
	PinsDecodedTotal       prometheus.Counter
	PinDecodeFailuresTotal *prometheus.CounterVec
	NodesWithoutPinsTotal  prometheus.Counter

	// Graph Metrics
	GraphsCompactedTotal prometheus.Counter
	NodesVisibleTotal    prometheus.Counter
	NodesElidedTotal     *prometheus.CounterVec

	// System Metrics
	AnalysisDuration *prometheus.HistogramVec
	JobsInFlight     prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initBytecodeMetrics()
	r.initPinMetrics()
	r.initGraphMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
