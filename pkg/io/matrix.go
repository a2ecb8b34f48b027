package io

import "github.com/matzehuels/bpmngraph/pkg/graph"

// Matrix is a node-indexed adjacency matrix.
// Data[i][j] is 1 if the edge Nodes[i]→Nodes[j] exists, else 0.
type Matrix struct {
	Nodes []string
	Data  [][]int64
}

// Adjacency builds the adjacency matrix of g over its node insertion order.
func Adjacency(g *graph.Graph) Matrix {
	ids := g.NodeIDs()
	idx := g.Index()

	data := make([][]int64, len(ids))
	for i := range data {
		data[i] = make([]int64, len(ids))
	}
	for _, e := range g.Edges() {
		data[idx[e.From]][idx[e.To]] = 1
	}
	return Matrix{Nodes: ids, Data: data}
}

// Size returns the number of rows (and columns).
func (m Matrix) Size() int { return len(m.Nodes) }
