package analysis

import (
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/cfg"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/kismet"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/logging"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/pseudocode"
)

// Function is one compiled function's decoded bytecode.
type Function struct {
	Name  string
	Exprs []kismet.Expr
	// Size overrides the serialized size of each instruction. Nil uses
	// kismet.SerializedSize.
	Size cfg.SizeFunc
}

// FunctionReport is the result of analyzing one function.
type FunctionReport struct {
	Name  string
	CFG   *cfg.Result
	Lines []pseudocode.Line
	// Unknown lists the opcodes of top-level instructions that have no
	// model, in stream order.
	Unknown []kismet.Token
}

// Text returns the listing as indented pseudocode.
func (r *FunctionReport) Text() string {
	return pseudocode.Format(r.Lines)
}

// AnalyzeFunction builds the flow graph of fn and renders its listing.
// Object references are named through resolver when it is non-nil.
func (a *Analyzer) AnalyzeFunction(fn Function, resolver asset.Resolver) *FunctionReport {
	log := a.logger.With(logging.Function(fn.Name))
	timer := logging.StartTimer(log, "function analyzed", logging.Component("cfg"))

	result := cfg.Build(fn.Exprs, fn.Size)
	report := &FunctionReport{
		Name:  fn.Name,
		CFG:   result,
		Lines: pseudocode.Listing(fn.Exprs, result, pseudocode.Renderer{Resolver: resolver}),
	}

	for _, e := range fn.Exprs {
		if u, ok := e.(*kismet.Unknown); ok {
			report.Unknown = append(report.Unknown, u.Tag)
			a.metrics.RecordUnknownInstruction(u.Tag.String())
		}
	}
	if len(report.Unknown) > 0 {
		log.Warn("function contains unmodelled instructions", logging.Count(len(report.Unknown)))
	}

	loops := len(result.LoopTargets())
	elapsed := timer.End(logging.Count(result.Len()), logging.Int("loops", loops))
	a.metrics.RecordFunction(result.Len(), loops, elapsed)
	return report
}
