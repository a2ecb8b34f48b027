package transform

import (
	"slices"

	"github.com/matzehuels/bpmngraph/pkg/graph"
)

// Collapse removes routing nodes from g in place, replacing each with
// direct edges from every predecessor to every successor.
//
// The nodes in routing (sequence flows and exclusive gateways) are
// collapsed first with plain edges. The nodes in parallel (parallel
// gateways) are collapsed afterwards with edges flagged [graph.Edge.Parallel],
// so a parallel gateway next to an exclusive decision sees the already
// flattened neighbors. Existing parallel flags are never cleared.
//
// Self-loops that appear when a predecessor is also a successor are kept.
// IDs that are not in g are ignored. Collapse returns the number of nodes
// removed in each pass.
func Collapse(g *graph.Graph, routing, parallel []string) (routed, split int) {
	for _, id := range routing {
		if collapseNode(g, id, false) {
			routed++
		}
	}
	for _, id := range parallel {
		if collapseNode(g, id, true) {
			split++
		}
	}
	return routed, split
}

func collapseNode(g *graph.Graph, id string, parallel bool) bool {
	if !g.HasNode(id) {
		return false
	}
	preds := slices.Clone(g.Predecessors(id))
	succs := slices.Clone(g.Successors(id))
	for _, p := range preds {
		if p == id {
			continue
		}
		for _, s := range succs {
			if s == id {
				continue
			}
			_ = g.AddEdge(graph.Edge{From: p, To: s, Parallel: parallel})
		}
	}
	_ = g.RemoveNode(id)
	return true
}
