package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bpmngraph/pkg/bpmn"
	"github.com/matzehuels/bpmngraph/pkg/graph"
	"github.com/matzehuels/bpmngraph/pkg/graph/transform"
	pkgio "github.com/matzehuels/bpmngraph/pkg/io"
	"github.com/matzehuels/bpmngraph/pkg/observability"
	"github.com/matzehuels/bpmngraph/pkg/render/nodelink"
)

// Runner executes pipeline stages and reports them to the logger and the
// registered observability hooks.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → convert → export pipeline.
// The context is checked between stages.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{Output: opts.Output, Format: opts.format}

	// Stage 1: Parse
	parseStart := time.Now()
	elems, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Elements = elems
	result.Stats.ElementCount = elems.Len()
	result.Stats.ParseTime = time.Since(parseStart)

	r.Logger.Info("classified elements",
		"elements", elems.Len(),
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Convert
	convertStart := time.Now()
	conv, err := r.Convert(ctx, elems, opts)
	if err != nil {
		return nil, err
	}
	result.Conversion = conv
	result.Stats.NodeCount = conv.Output.NodeCount()
	result.Stats.EdgeCount = conv.Output.EdgeCount()
	result.Stats.PairCount = len(conv.Pairs)
	result.Stats.ConvertTime = time.Since(convertStart)

	r.Logger.Info("converted graph",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"concurrent", result.Stats.PairCount,
		"duration", result.Stats.ConvertTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Export
	exportStart := time.Now()
	if err := r.Export(ctx, conv.Output, opts.Output); err != nil {
		return nil, err
	}
	result.Stats.ExportTime = time.Since(exportStart)

	r.Logger.Info("wrote matrix",
		"path", opts.Output,
		"format", opts.format,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Parse reads the document at opts.Input and classifies its elements.
func (r *Runner) Parse(ctx context.Context, opts Options) (elems *bpmn.Classified, err error) {
	r.applyLogger(&opts)
	opts.setCommonDefaults()
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.Input)
	start := time.Now()
	defer func() {
		n := 0
		if elems != nil {
			n = elems.Len()
		}
		hooks.OnParseComplete(ctx, opts.Input, n, time.Since(start), err)
	}()

	doc, err := bpmn.ParseFile(opts.Input)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("parsed document", "path", opts.Input, "root", doc.Root.Tag)

	scheme := opts.Config.Scheme
	r.Logger.Debug("classifying", "prefix", scheme.Prefix, "task", scheme.TaskTag, "single", scheme.SingleStartEnd)
	return bpmn.Classify(doc, scheme)
}

// Convert builds the element graph and runs every transformation on it.
func (r *Runner) Convert(ctx context.Context, elems *bpmn.Classified, opts Options) (conv *transform.Result, err error) {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	hooks.OnConvertStart(ctx, elems.Len())
	start := time.Now()
	defer func() {
		nodes, pairs := 0, 0
		if conv != nil {
			nodes, pairs = conv.Output.NodeCount(), len(conv.Pairs)
		}
		hooks.OnConvertComplete(ctx, nodes, pairs, time.Since(start), err)
	}()

	conv, err = transform.Convert(elems, opts.BuildOptions())
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("built raw graph", "nodes", conv.RawNodes, "edges", conv.RawEdges)
	r.Logger.Debug("collapsed routing nodes",
		"routing", conv.RoutingCollapsed,
		"parallel", conv.ParallelCollapsed)
	if conv.CycleEdgesRemoved > 0 {
		r.Logger.Debug("reduced cycles", "removed_edges", conv.CycleEdgesRemoved)
	}
	for _, p := range conv.Pairs {
		r.Logger.Debug("concurrent pair", "u", p.U, "v", p.V, "fork", p.Ancestor)
	}
	return conv, nil
}

// Export writes the adjacency matrix of g to path.
func (r *Runner) Export(ctx context.Context, g *graph.Graph, path string) (err error) {
	format, err := pkgio.FormatFor(path)
	if err != nil {
		return err
	}
	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, path, format)
	start := time.Now()
	defer func() {
		hooks.OnExportComplete(ctx, path, format, time.Since(start), err)
	}()

	return pkgio.Export(g, path)
}

// RenderSVG draws g as a node-link diagram.
func (r *Runner) RenderSVG(g *graph.Graph, detailed bool) ([]byte, error) {
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: detailed})
	svg, err := nodelink.RenderSVG(dot)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	r.Logger.Debug("rendered svg", "bytes", len(svg))
	return svg, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
