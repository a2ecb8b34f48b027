package transform

import "github.com/matzehuels/bpmngraph/pkg/graph"

// ReduceCycles removes edges from g until it is acyclic and returns the
// number of edges removed.
//
// Each round finds one cycle with [graph.Graph.FindCycle] and deletes its
// last edge, the back edge that closes the loop. Every round removes an
// edge, so the loop terminates. The node set is unchanged.
//
// ReduceCycles mutates g. Callers that still need the cyclic structure must
// pass a [graph.Graph.Clone].
func ReduceCycles(g *graph.Graph) int {
	removed := 0
	for {
		cycle := g.FindCycle()
		if cycle == nil {
			return removed
		}
		last := cycle[len(cycle)-1]
		g.RemoveEdge(last.From, last.To)
		removed++
	}
}
