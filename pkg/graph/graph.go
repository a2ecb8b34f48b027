package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrUnknownNode is returned by [Graph.RemoveNode] when the node does not exist.
	ErrUnknownNode = errors.New("unknown node")
)

// Kind is the diagram construct a node was created from.
type Kind int

const (
	KindStartEvent Kind = iota
	KindEndEvent
	KindTask
	KindSequenceFlow
	KindParallelGateway
	KindExclusiveGateway
)

var kindNames = [...]string{
	KindStartEvent:       "startEvent",
	KindEndEvent:         "endEvent",
	KindTask:             "task",
	KindSequenceFlow:     "sequenceFlow",
	KindParallelGateway:  "parallelGateway",
	KindExclusiveGateway: "exclusiveGateway",
}

// String returns the bare BPMN tag name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsRouting reports whether nodes of this kind are removed during collapse.
// Sequence flows and both gateway kinds only route control flow; events and
// tasks are the activities that survive into the exported graph.
func (k Kind) IsRouting() bool {
	switch k {
	case KindSequenceFlow, KindParallelGateway, KindExclusiveGateway:
		return true
	}
	return false
}

// Node is a vertex of the process graph, keyed by the element id.
type Node struct {
	ID   string // Element id, unique within the graph
	Kind Kind   // Construct the node was created from
	Name string // Display name, may be empty
}

// Label returns the name if set, otherwise the ID.
func (n Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID
}

// Edge is a directed connection between two nodes.
//
// Parallel marks edges inserted while collapsing a parallel gateway.
// Concurrent marks edges added by concurrency inference. Both flags are
// sticky: adding the same ordered pair again ORs the flags in and never
// clears one.
type Edge struct {
	From       string
	To         string
	Parallel   bool
	Concurrent bool
}

type edgeKey struct{ from, to string }

// Graph is a directed graph with stable node and edge ordering.
//
// Nodes are kept in insertion order and edges have set semantics keyed by
// the ordered (From, To) pair. Self-loops and cycles are allowed; acyclicity
// is established explicitly by the cycle reducer in the transform package.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	order    []string
	nodes    map[string]*Node
	edges    map[edgeKey]*Edge
	edgeSeq  []edgeKey
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		edges:    make(map[edgeKey]*Edge),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the node ID is empty, or ErrDuplicateNodeID
// if a node with the same ID already exists.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n.ID] = &n
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// If the ordered pair already exists, the Parallel and Concurrent flags of
// e are OR-ed into the stored edge and no second edge is created.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is missing.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	k := edgeKey{e.From, e.To}
	if existing, ok := g.edges[k]; ok {
		existing.Parallel = existing.Parallel || e.Parallel
		existing.Concurrent = existing.Concurrent || e.Concurrent
		return nil
	}
	g.edges[k] = &e
	g.edgeSeq = append(g.edgeSeq, k)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// RemoveEdge removes the edge from→to if it exists.
// No error is returned if the edge does not exist.
func (g *Graph) RemoveEdge(from, to string) {
	k := edgeKey{from, to}
	if _, ok := g.edges[k]; !ok {
		return
	}
	delete(g.edges, k)
	g.edgeSeq = slices.DeleteFunc(g.edgeSeq, func(x edgeKey) bool { return x == k })
	g.outgoing[from] = slices.DeleteFunc(g.outgoing[from], func(s string) bool { return s == to })
	g.incoming[to] = slices.DeleteFunc(g.incoming[to], func(s string) bool { return s == from })
}

// RemoveNode deletes the node and every edge incident to it.
// Returns ErrUnknownNode if the node does not exist.
func (g *Graph) RemoveNode(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrUnknownNode
	}
	for _, child := range slices.Clone(g.outgoing[id]) {
		g.RemoveEdge(id, child)
	}
	for _, parent := range slices.Clone(g.incoming[id]) {
		g.RemoveEdge(parent, id)
	}
	delete(g.outgoing, id)
	delete(g.incoming, id)
	delete(g.nodes, id)
	g.order = slices.DeleteFunc(g.order, func(s string) bool { return s == id })
	return nil
}

// Node returns the node with the given ID and true, or nil and false if not found.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Edge returns the edge from→to and true, or the zero Edge and false.
func (g *Graph) Edge(from, to string) (Edge, bool) {
	e, ok := g.edges[edgeKey{from, to}]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edges[edgeKey{from, to}]
	return ok
}

// Nodes returns all nodes in insertion order.
// The returned slice contains pointers to the actual nodes.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edgeSeq))
	for i, k := range g.edgeSeq {
		edges[i] = *g.edges[k]
	}
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edgeSeq) }

// Successors returns the IDs of nodes this node has edges to, in edge
// insertion order. The returned slice should not be modified.
func (g *Graph) Successors(id string) []string { return g.outgoing[id] }

// Predecessors returns the IDs of nodes that have edges to this node, in
// edge insertion order. The returned slice should not be modified.
func (g *Graph) Predecessors(id string) []string { return g.incoming[id] }

// Clone returns an independent deep copy of the graph. Mutations of the
// copy never affect g, and vice versa.
func (g *Graph) Clone() *Graph {
	c := New()
	for _, id := range g.order {
		_ = c.AddNode(*g.nodes[id])
	}
	for _, k := range g.edgeSeq {
		_ = c.AddEdge(*g.edges[k])
	}
	return c
}

// Index maps each node ID to its position in insertion order.
func (g *Graph) Index() map[string]int {
	m := make(map[string]int, len(g.order))
	for i, id := range g.order {
		m[id] = i
	}
	return m
}
