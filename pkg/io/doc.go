// Package io exports process graphs as adjacency matrices.
//
// # Overview
//
// [Adjacency] turns a graph into a [Matrix] over the graph's node insertion
// order: entry (i, j) is 1 when the edge from node i to node j exists.
// The node order is the order elements were classified in, so the same
// document always yields the same matrix.
//
// # NumPy Format
//
// [WriteNPY] writes the matrix as a .npy version 1.0 file holding a
// little-endian int64 array of shape (N, N):
//
//	>>> import numpy as np
//	>>> np.load("adj_matrix.npy")
//	array([[0, 1, 1, 0], ...])
//
// # JSON Format
//
// [WriteJSON] writes the nodes (id, kind, name), the edges with their
// parallel and concurrent flags, and the matrix:
//
//	{
//	  "nodes": [{"id": "S", "kind": "startEvent"}, ...],
//	  "edges": [{"from": "S", "to": "T1", "parallel": true}, ...],
//	  "matrix": [[0, 1], [0, 0]]
//	}
//
// # Files
//
// [Export] picks the format from the output suffix (".npy" or ".json";
// no suffix means .npy) and writes atomically through a temporary file.
package io
