package analysis

import (
	"fmt"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/compact"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/logging"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/pins"
)

// NodeError records a node whose pins could not be decoded. The node is
// still part of the graph, without pins.
type NodeError struct {
	Node  string
	Class string
	Err   error
}

func (e NodeError) Error() string {
	return fmt.Sprintf("node %s (%s): %v", e.Node, e.Class, e.Err)
}

func (e NodeError) Unwrap() error {
	return e.Err
}

// GraphReport is the result of analyzing one editor graph.
type GraphReport struct {
	Name string
	// Nodes holds every node with its decoded pins, in input order.
	Nodes   []compact.Node
	Compact compact.Graph
	Errors  []NodeError
}

// PinCount returns the number of decoded pins across all nodes.
func (r *GraphReport) PinCount() int {
	n := 0
	for i := range r.Nodes {
		n += len(r.Nodes[i].Pins)
	}
	return n
}

// DecodeGraph decodes the pins of every node in g. A node whose Extras
// fail to decode is kept without pins and reported in the error list;
// the remaining nodes are unaffected.
func (a *Analyzer) DecodeGraph(g asset.Graph, opts pins.Options) ([]compact.Node, []NodeError) {
	log := a.logger.With(logging.Graph(g.Name))

	nodes := make([]compact.Node, len(g.Nodes))
	var errs []NodeError
	for i, n := range g.Nodes {
		nodes[i] = compact.Node{Name: n.Name, Class: n.Class}
		if len(n.Extras) == 0 {
			a.metrics.NodesWithoutPinsTotal.Inc()
			continue
		}

		decoded, err := pins.DecodeExtras(n.Extras, opts)
		if err != nil {
			errs = append(errs, NodeError{Node: n.Name, Class: n.Class, Err: err})
			a.logDecodeFailure(log, n, err)
			continue
		}
		nodes[i].Pins = decoded
		a.metrics.RecordPins(len(decoded))
	}
	return nodes, errs
}

func (a *Analyzer) logDecodeFailure(log logging.Logger, n asset.Node, err error) {
	fields := []logging.Field{logging.Node(n.Name), logging.String("class", n.Class), logging.Error(err)}
	field := ""
	if de, ok := pins.IsDecodeError(err); ok {
		field = de.Field
		fields = append(fields, logging.DecodeField(de.Field), logging.Offset(de.Offset))
		if de.PinName != "" {
			fields = append(fields, logging.Pin(de.PinName))
		}
	}
	a.metrics.RecordDecodeFailure(field)
	log.Warn("pin decode failed", fields...)
}

// AnalyzeGraph decodes g's pins and compacts the result.
func (a *Analyzer) AnalyzeGraph(g asset.Graph, opts pins.Options) *GraphReport {
	log := a.logger.With(logging.Graph(g.Name))
	timer := logging.StartTimer(log, "graph analyzed", logging.Component("compact"))

	nodes, errs := a.DecodeGraph(g, opts)
	compacted := compact.New(nodes, nil, a.opts.Rules()).Compact()
	report := &GraphReport{
		Name:    g.Name,
		Nodes:   nodes,
		Compact: compacted,
		Errors:  errs,
	}

	elided := map[string]int{}
	for _, e := range compacted.Elided {
		elided[e.Kind.String()]++
	}
	elapsed := timer.End(
		logging.Count(len(compacted.Nodes)),
		logging.Int("elided", len(compacted.Elided)),
		logging.Int("decode_errors", len(errs)),
	)
	a.metrics.RecordGraph(len(compacted.Nodes), elided, elapsed)
	return report
}
