// Package analysis runs the bytecode and pin-graph passes over an asset's
// functions and graphs and reports what they recovered.
//
// Each pass is synchronous and works on one function or one graph. The
// batch entry points fan independent units out over a worker pool.
package analysis

import (
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/config"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/logging"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/metrics"
)

// Asset carries the asset-level context shared by all of its functions and
// graphs.
type Asset struct {
	Name string
	// Version gates version-dependent pin fields. Zero means the
	// configured format_version.
	Version   asset.Version
	Names     asset.NameTable
	Resolver  asset.Resolver
	Functions []Function
	Graphs    []asset.Graph
}

// Analyzer wires the passes to configuration, logging and metrics.
// It is safe for concurrent use.
type Analyzer struct {
	opts    config.Options
	logger  logging.Logger
	metrics *metrics.Registry
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics sets the metrics registry. The default is
// metrics.DefaultRegistry().
func WithMetrics(r *metrics.Registry) Option {
	return func(a *Analyzer) {
		if r != nil {
			a.metrics = r
		}
	}
}

// New creates an Analyzer. opts is used as given; validate it first when
// it did not come from config.Load or config.Parse.
func New(opts config.Options, options ...Option) *Analyzer {
	a := &Analyzer{
		opts:   opts,
		logger: logging.NewNopLogger(),
	}
	for _, o := range options {
		o(a)
	}
	if a.metrics == nil {
		a.metrics = metrics.DefaultRegistry()
	}
	return a
}

// Options returns the analyzer's configuration.
func (a *Analyzer) Options() config.Options {
	return a.opts
}
