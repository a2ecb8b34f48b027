package graph

// FindCycle returns the edges of one directed cycle in traversal order, or
// nil if the graph is acyclic. The last edge of the result is the back edge
// that closes the loop onto the cycle's first node.
//
// The search is a depth-first traversal started from each node in insertion
// order, following successors in edge insertion order, so the same graph
// always yields the same cycle. A self-loop is reported as a single-edge cycle.
func (g *Graph) FindCycle() []Edge {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.order))
	var path []string // gray nodes, root first
	var cycle []Edge

	var dfs func(id string) bool
	dfs = func(id string) bool {
		color[id] = gray
		path = append(path, id)
		for _, child := range g.outgoing[id] {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				start := len(path) - 1
				for path[start] != child {
					start--
				}
				for i := start; i < len(path)-1; i++ {
					cycle = append(cycle, *g.edges[edgeKey{path[i], path[i+1]}])
				}
				cycle = append(cycle, *g.edges[edgeKey{id, child}])
				return true
			}
		}
		path = path[:len(path)-1]
		color[id] = black
		return false
	}

	for _, id := range g.order {
		if color[id] == white && dfs(id) {
			return cycle
		}
	}
	return nil
}

// IsAcyclic reports whether the graph contains no directed cycle.
func (g *Graph) IsAcyclic() bool { return g.FindCycle() == nil }

// Descendants returns the set of nodes reachable from id through at least
// one edge. The node itself is included only if it lies on a cycle.
func (g *Graph) Descendants(id string) map[string]bool {
	seen := make(map[string]bool)
	stack := append([]string(nil), g.outgoing[id]...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		stack = append(stack, g.outgoing[n]...)
	}
	return seen
}

// Ancestors returns the set of nodes from which id is reachable through at
// least one edge. The node itself is included only if it lies on a cycle.
func (g *Graph) Ancestors(id string) map[string]bool {
	seen := make(map[string]bool)
	stack := append([]string(nil), g.incoming[id]...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		stack = append(stack, g.incoming[n]...)
	}
	return seen
}
