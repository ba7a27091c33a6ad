package metrics

import (
	"runtime"
	"time"
)

// RecordFunction records one analyzed bytecode function
func (r *Registry) RecordFunction(blocks, loopTargets int, duration time.Duration) {
	status := "ok"
	if blocks == 0 {
		status = "empty"
	}
	r.FunctionsAnalyzedTotal.WithLabelValues(status).Inc()
	r.FunctionBlocks.Observe(float64(blocks))
	r.LoopTargetsTotal.Add(float64(loopTargets))
	r.AnalysisDuration.WithLabelValues("function").Observe(duration.Seconds())
}

// RecordUnknownInstruction counts an instruction that fell through to the
// generic rendering.
func (r *Registry) RecordUnknownInstruction(token string) {
	r.UnknownInstructionsTotal.WithLabelValues(token).Inc()
}

// RecordPins records a successfully decoded pin block
func (r *Registry) RecordPins(n int) {
	r.PinsDecodedTotal.Add(float64(n))
}

// RecordDecodeFailure records a pin block that could not be decoded
func (r *Registry) RecordDecodeFailure(field string) {
	if field == "" {
		field = "unknown"
	}
	r.PinDecodeFailuresTotal.WithLabelValues(field).Inc()
}

// RecordGraph records one compacted graph. elided maps elision kind to count.
func (r *Registry) RecordGraph(visible int, elided map[string]int, duration time.Duration) {
	r.GraphsCompactedTotal.Inc()
	r.NodesVisibleTotal.Add(float64(visible))
	for kind, n := range elided {
		r.NodesElidedTotal.WithLabelValues(kind).Add(float64(n))
	}
	r.AnalysisDuration.WithLabelValues("graph").Observe(duration.Seconds())
}

// UpdateSystemMetrics samples goroutine and heap gauges
func (r *Registry) UpdateSystemMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(ms.Alloc))
}
