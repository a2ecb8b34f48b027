package transform

import "github.com/matzehuels/bpmngraph/pkg/graph"

// Pair is two nodes that may occur in either order.
type Pair struct {
	U, V     string
	Ancestor string // lowest common ancestor both branches fork from
}

// InferConcurrency returns every pair of nodes of the acyclic graph dag
// whose executions are not ordered relative to each other.
//
// For each unordered pair (u, v) it finds the lowest common ancestor a. The
// pair is skipped if there is none, or if a is u or v (one precedes the
// other). Otherwise the pair is concurrent when both u and v can be reached
// from a by a path whose first edge is a parallel-split edge.
//
// Pairs are returned in node order (u before v). Ancestor and descendant
// sets are computed once per node.
func InferConcurrency(dag *graph.Graph) []Pair {
	ids := dag.NodeIDs()
	idx := dag.Index()

	anc := make(map[string]map[string]bool, len(ids))
	desc := make(map[string]map[string]bool, len(ids))
	for _, id := range ids {
		anc[id] = dag.Ancestors(id)
		anc[id][id] = true
		desc[id] = dag.Descendants(id)
	}

	// forkReaches reports whether some parallel edge a→s leads to target.
	forkReaches := func(a, target string) bool {
		for _, s := range dag.Successors(a) {
			e, _ := dag.Edge(a, s)
			if e.Parallel && (s == target || desc[s][target]) {
				return true
			}
		}
		return false
	}

	var pairs []Pair
	for i, u := range ids {
		for _, v := range ids[i+1:] {
			lca, ok := lowestCommonAncestor(dag, anc[u], anc[v], ids, idx)
			if !ok || lca == u || lca == v {
				continue
			}
			if forkReaches(lca, u) && forkReaches(lca, v) {
				pairs = append(pairs, Pair{U: u, V: v, Ancestor: lca})
			}
		}
	}
	return pairs
}

// lowestCommonAncestor picks the first common ancestor in node order and
// descends through common successors until none is left.
func lowestCommonAncestor(dag *graph.Graph, au, av map[string]bool, ids []string, idx map[string]int) (string, bool) {
	var common map[string]bool
	first := -1
	for id := range au {
		if !av[id] {
			continue
		}
		if common == nil {
			common = make(map[string]bool)
		}
		common[id] = true
		if i := idx[id]; first < 0 || i < first {
			first = i
		}
	}
	if first < 0 {
		return "", false
	}

	cur := ids[first]
	for {
		next := ""
		for _, s := range dag.Successors(cur) {
			if common[s] {
				next = s
				break
			}
		}
		if next == "" {
			return cur, true
		}
		cur = next
	}
}

// AddConcurrency inserts u→v and v→u, flagged [graph.Edge.Concurrent],
// into g for every pair. Re-adding an existing pair changes nothing.
func AddConcurrency(g *graph.Graph, pairs []Pair) error {
	for _, p := range pairs {
		if err := g.AddEdge(graph.Edge{From: p.U, To: p.V, Concurrent: true}); err != nil {
			return err
		}
		if err := g.AddEdge(graph.Edge{From: p.V, To: p.U, Concurrent: true}); err != nil {
			return err
		}
	}
	return nil
}
