package io

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/bpmngraph/pkg/errors"
	"github.com/matzehuels/bpmngraph/pkg/graph"
)

// loopGraph is the collapsed form of a task looping on itself:
// S -> T1, T1 -> T1, T1 -> T2, T2 -> E.
func loopGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, n := range []graph.Node{
		{ID: "S", Kind: graph.KindStartEvent},
		{ID: "E", Kind: graph.KindEndEvent},
		{ID: "T1", Kind: graph.KindTask, Name: "Draft"},
		{ID: "T2", Kind: graph.KindTask},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []graph.Edge{
		{From: "S", To: "T1"},
		{From: "T2", To: "E"},
		{From: "T1", To: "T1"},
		{From: "T1", To: "T2", Parallel: true},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestAdjacency(t *testing.T) {
	m := Adjacency(loopGraph(t))

	if diff := cmp.Diff([]string{"S", "E", "T1", "T2"}, m.Nodes); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}
	want := [][]int64{
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{0, 1, 0, 0},
	}
	if diff := cmp.Diff(want, m.Data); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjacency_Empty(t *testing.T) {
	m := Adjacency(graph.New())
	if m.Size() != 0 || len(m.Data) != 0 {
		t.Errorf("Adjacency(empty) = %+v", m)
	}
}

func TestWriteNPY(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNPY(Adjacency(loopGraph(t)), &buf); err != nil {
		t.Fatalf("WriteNPY() error: %v", err)
	}
	data := buf.Bytes()

	if !bytes.HasPrefix(data, []byte("\x93NUMPY\x01\x00")) {
		t.Fatalf("missing magic: %q", data[:8])
	}
	hlen := int(binary.LittleEndian.Uint16(data[8:10]))
	if (10+hlen)%64 != 0 {
		t.Errorf("preamble length %d not aligned to 64", 10+hlen)
	}
	header := string(data[10 : 10+hlen])
	if !strings.HasSuffix(header, "\n") {
		t.Error("header does not end in newline")
	}
	for _, want := range []string{"'descr': '<i8'", "'fortran_order': False", "'shape': (4, 4)"} {
		if !strings.Contains(header, want) {
			t.Errorf("header %q missing %s", header, want)
		}
	}

	body := data[10+hlen:]
	if len(body) != 16*8 {
		t.Fatalf("body length = %d, want %d", len(body), 16*8)
	}
	got := make([]int64, 16)
	if err := binary.Read(bytes.NewReader(body), binary.LittleEndian, got); err != nil {
		t.Fatal(err)
	}
	want := []int64{0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteNPY_RaggedRow(t *testing.T) {
	m := Matrix{Nodes: []string{"a", "b"}, Data: [][]int64{{0, 1}, {0}}}
	if err := WriteNPY(m, &bytes.Buffer{}); err == nil {
		t.Error("WriteNPY() with ragged row should fail")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(loopGraph(t), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var got document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.Nodes[2] != (node{ID: "T1", Kind: "task", Name: "Draft"}) {
		t.Errorf("Nodes[2] = %+v", got.Nodes[2])
	}
	if !got.Edges[3].Parallel {
		t.Errorf("Edges[3] = %+v, want parallel", got.Edges[3])
	}
	if len(got.Matrix) != 4 {
		t.Errorf("Matrix rows = %d, want 4", len(got.Matrix))
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"adj_matrix.npy", FormatNPY, false},
		{"out/ADJ.NPY", FormatNPY, false},
		{"adj", FormatNPY, false},
		{"graph.json", FormatJSON, false},
		{"graph.csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("FormatFor(%q) error = %v, want INVALID_FORMAT", tt.path, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("FormatFor(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
			}
		})
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	g := loopGraph(t)

	npy := filepath.Join(dir, "adj_matrix.npy")
	if err := Export(g, npy); err != nil {
		t.Fatalf("Export(npy) error: %v", err)
	}
	data, err := os.ReadFile(npy)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x93NUMPY")) {
		t.Error("npy export missing magic")
	}

	js := filepath.Join(dir, "graph.json")
	if err := Export(g, js); err != nil {
		t.Fatalf("Export(json) error: %v", err)
	}
	if data, _ := os.ReadFile(js); !json.Valid(data) {
		t.Error("json export is not valid JSON")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("dir has %d entries, want 2 (temp files left behind?)", len(entries))
	}
}

func TestExport_NoPartialOutput(t *testing.T) {
	dir := t.TempDir()

	if err := Export(loopGraph(t), filepath.Join(dir, "out.csv")); err == nil {
		t.Fatal("Export(csv) should fail")
	}
	if err := Export(loopGraph(t), filepath.Join(dir, "missing", "out.npy")); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("Export(missing dir) error = %v, want IO", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("dir has %d entries after failed exports, want 0", len(entries))
	}
}
