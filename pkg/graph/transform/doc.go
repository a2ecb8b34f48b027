// Package transform lowers classified diagram elements into the process
// graph that gets exported.
//
// # Pipeline
//
// [Convert] applies the phases in order:
//
//  1. [Build] creates one node per element and wires edges from the
//     incoming and outgoing references of events, tasks and gateways.
//  2. [Collapse] removes sequence flows and exclusive gateways, then
//     parallel gateways, replacing each with predecessor×successor edges.
//     Edges inserted for parallel gateways carry the Parallel flag.
//  3. The collapsed graph is cloned. The clone keeps any cycles and becomes
//     the output graph.
//  4. [ReduceCycles] deletes the closing edge of one cycle at a time from
//     the other copy until it is a DAG.
//  5. [InferConcurrency] finds node pairs whose lowest common ancestor in
//     the DAG forks to both of them through parallel-split edges, and
//     [AddConcurrency] adds u→v and v→u for each pair to the output graph.
//
// # Determinism
//
// Every phase iterates nodes and edges in insertion order, so a document
// always produces the same graph, the same removed cycle edges and the same
// concurrent pairs.
//
// # Complexity
//
// Concurrency inference looks at every node pair. Ancestor and descendant
// sets are computed once per node, which keeps the step at O(V²·V) for the
// small diagrams this is meant for.
package transform
