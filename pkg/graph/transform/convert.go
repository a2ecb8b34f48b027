package transform

import (
	"fmt"

	"github.com/matzehuels/bpmngraph/pkg/bpmn"
	"github.com/matzehuels/bpmngraph/pkg/graph"
)

// Result is the outcome of [Convert].
type Result struct {
	// Output is the collapsed graph, cycles intact, plus the symmetric
	// concurrency edges. This is the graph to export.
	Output *graph.Graph

	// Acyclic is the cycle-reduced copy used for ancestor reasoning.
	Acyclic *graph.Graph

	// Pairs lists the concurrent node pairs found by inference.
	Pairs []Pair

	// RawNodes and RawEdges describe the graph before collapse.
	RawNodes int
	RawEdges int

	// RoutingCollapsed counts removed sequence flows and exclusive gateways.
	RoutingCollapsed int

	// ParallelCollapsed counts removed parallel gateways.
	ParallelCollapsed int

	// CycleEdgesRemoved counts edges deleted from Acyclic to break cycles.
	// Zero indicates the collapsed graph was already acyclic.
	CycleEdgesRemoved int
}

// Convert runs the whole transformation on classified elements: build the
// raw graph, collapse routing nodes, snapshot the output graph, reduce a
// separate copy to a DAG, infer concurrent pairs on it and add them to the
// output graph.
//
// The output graph and the acyclic copy share no state.
func Convert(c *bpmn.Classified, opts BuildOptions) (*Result, error) {
	g, err := Build(c, opts)
	if err != nil {
		return nil, err
	}
	res := &Result{RawNodes: g.NodeCount(), RawEdges: g.EdgeCount()}

	routing := append(bpmn.IDs(c.SequenceFlows), bpmn.IDs(c.ExclusiveGateways)...)
	res.RoutingCollapsed, res.ParallelCollapsed = Collapse(g, routing, bpmn.IDs(c.ParallelGateways))

	res.Output = g.Clone()
	res.Acyclic = g
	res.CycleEdgesRemoved = ReduceCycles(res.Acyclic)

	res.Pairs = InferConcurrency(res.Acyclic)
	if err := AddConcurrency(res.Output, res.Pairs); err != nil {
		return nil, fmt.Errorf("add concurrency edges: %w", err)
	}
	return res, nil
}
