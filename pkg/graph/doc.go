// Package graph provides the directed graph that a business-process diagram
// is lowered into.
//
// # Overview
//
// A [Graph] holds one [Node] per diagram element (events, tasks, gateways
// and sequence flows while the graph is being built; only events and tasks
// once routing nodes are collapsed) and a set of directed [Edge] values.
//
// Nodes keep their insertion order. That order is the row and column order
// of the exported adjacency matrix, so it must be reproducible across runs.
//
// # Edge Semantics
//
// Edges are a set keyed by the ordered (From, To) pair. Adding an edge twice
// never duplicates it; the [Edge.Parallel] and [Edge.Concurrent] flags are
// OR-ed in, so a later plain insertion cannot erase a parallel marker:
//
//	g.AddEdge(graph.Edge{From: "a", To: "b", Parallel: true})
//	g.AddEdge(graph.Edge{From: "a", To: "b"}) // still Parallel
//
// # Copies
//
// Conversion phases that mutate destructively work on [Graph.Clone] copies.
// A clone shares nothing with its source.
//
// # Traversal
//
// [Graph.FindCycle] performs a deterministic depth-first search and returns
// one cycle as an edge list ending with its closing back edge.
// [Graph.Descendants] and [Graph.Ancestors] compute reachability sets.
package graph
