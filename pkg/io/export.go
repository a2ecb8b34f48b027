package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/bpmngraph/pkg/errors"
	"github.com/matzehuels/bpmngraph/pkg/graph"
)

// Output formats, selected by the output path suffix.
const (
	FormatNPY  = "npy"
	FormatJSON = "json"
)

type document struct {
	Nodes  []node    `json:"nodes"`
	Edges  []edge    `json:"edges"`
	Matrix [][]int64 `json:"matrix"`
}

type node struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
}

type edge struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Parallel   bool   `json:"parallel,omitempty"`
	Concurrent bool   `json:"concurrent,omitempty"`
}

// WriteJSON encodes the graph as JSON and writes it to w. The output holds
// the nodes in matrix order, the edges with their flags, and the adjacency
// matrix itself.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	out := document{
		Nodes:  make([]node, 0, g.NodeCount()),
		Edges:  make([]edge, 0, g.EdgeCount()),
		Matrix: Adjacency(g).Data,
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, node{ID: n.ID, Kind: n.Kind.String(), Name: n.Name})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To, Parallel: e.Parallel, Concurrent: e.Concurrent})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// FormatFor returns the output format implied by the suffix of path.
// Paths without a suffix use FormatNPY. Unknown suffixes are an
// INVALID_FORMAT error.
func FormatFor(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "", FormatNPY:
		return FormatNPY, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (must be 'npy' or 'json')", ext)
	}
}

// Export writes g to path in the format chosen by [FormatFor].
//
// The file is written to a temporary sibling and renamed into place, so
// on error path is left untouched and no partial output exists.
func Export(g *graph.Graph, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	return writeAtomic(path, func(w io.Writer) error {
		if format == FormatJSON {
			return WriteJSON(g, w)
		}
		return WriteNPY(Adjacency(g), w)
	})
}

func writeAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "chmod %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "rename %s", path)
	}
	return nil
}
