package analysis

import (
	"context"
	"fmt"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/logging"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/parallel"
)

// Report collects the results for one asset. Entries are in input order;
// an entry is nil when its job did not run or panicked, and Failures says
// why.
type Report struct {
	Asset     string
	Functions []*FunctionReport
	Graphs    []*GraphReport
	Failures  []error
}

// FunctionCount returns the number of functions that produced a report.
func (r *Report) FunctionCount() int {
	n := 0
	for _, f := range r.Functions {
		if f != nil {
			n++
		}
	}
	return n
}

// job is one unit of batch work: exactly one of fn and graph is set.
type job struct {
	index int
	fn    *Function
	graph *asset.Graph
}

type jobResult struct {
	fn    *FunctionReport
	graph *GraphReport
}

// Batch analyzes every function and graph of the asset on the configured number of
// workers. It stops starting new jobs once ctx is done and returns
// ctx.Err() alongside whatever finished.
func (a *Analyzer) Batch(ctx context.Context, in Asset) (*Report, error) {
	log := a.logger.With(logging.Asset(in.Name))
	timer := logging.StartTimer(log, "asset analyzed")
	pinOpts := a.opts.PinOptions(in.Version, in.Names, in.Resolver)

	jobs := make([]job, 0, len(in.Functions)+len(in.Graphs))
	for i := range in.Functions {
		jobs = append(jobs, job{index: i, fn: &in.Functions[i]})
	}
	for i := range in.Graphs {
		jobs = append(jobs, job{index: i, graph: &in.Graphs[i]})
	}

	results, err := parallel.Map(ctx, a.opts.WorkerCount(), jobs, func(_ context.Context, j job) (jobResult, error) {
		a.metrics.JobsInFlight.Inc()
		defer a.metrics.JobsInFlight.Dec()
		if j.fn != nil {
			return jobResult{fn: a.AnalyzeFunction(*j.fn, in.Resolver)}, nil
		}
		return jobResult{graph: a.AnalyzeGraph(*j.graph, pinOpts)}, nil
	}, parallel.WithLogger(log))

	report := &Report{
		Asset:     in.Name,
		Functions: make([]*FunctionReport, len(in.Functions)),
		Graphs:    make([]*GraphReport, len(in.Graphs)),
	}
	for i, r := range results {
		j := jobs[i]
		if r.Err != nil {
			if j.fn != nil {
				report.Failures = append(report.Failures, fmt.Errorf("function %s: %w", j.fn.Name, r.Err))
			} else {
				report.Failures = append(report.Failures, fmt.Errorf("graph %s: %w", j.graph.Name, r.Err))
			}
			continue
		}
		if j.fn != nil {
			report.Functions[j.index] = r.Value.fn
		} else {
			report.Graphs[j.index] = r.Value.graph
		}
	}
	a.metrics.UpdateSystemMetrics()

	if err != nil {
		timer.EndError(err)
		return report, fmt.Errorf("analysis of %s interrupted: %w", in.Name, err)
	}
	timer.End(logging.Count(len(jobs)), logging.Int("failures", len(report.Failures)))
	return report, nil
}
