package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/bpmngraph/pkg/graph"
)

func TestInferConcurrency_ParallelFork(t *testing.T) {
	// s =P=> a, s =P=> b, a -> e, b -> e
	g := newGraph(t, "s", "e", "a", "b")
	addEdges(t, g,
		graph.Edge{From: "s", To: "a", Parallel: true},
		graph.Edge{From: "s", To: "b", Parallel: true},
		graph.Edge{From: "a", To: "e"},
		graph.Edge{From: "b", To: "e"},
	)

	want := []Pair{{U: "a", V: "b", Ancestor: "s"}}
	if diff := cmp.Diff(want, InferConcurrency(g)); diff != "" {
		t.Errorf("InferConcurrency() mismatch (-want +got):\n%s", diff)
	}
}

func TestInferConcurrency_ExclusiveFork(t *testing.T) {
	g := newGraph(t, "s", "a", "b")
	addEdges(t, g,
		graph.Edge{From: "s", To: "a"},
		graph.Edge{From: "s", To: "b"},
	)

	if pairs := InferConcurrency(g); len(pairs) != 0 {
		t.Errorf("InferConcurrency() = %v, want none", pairs)
	}
}

func TestInferConcurrency_OneSidedParallel(t *testing.T) {
	g := newGraph(t, "s", "a", "b")
	addEdges(t, g,
		graph.Edge{From: "s", To: "a", Parallel: true},
		graph.Edge{From: "s", To: "b"},
	)

	if pairs := InferConcurrency(g); len(pairs) != 0 {
		t.Errorf("InferConcurrency() = %v, want none", pairs)
	}
}

func TestInferConcurrency_DeepBranches(t *testing.T) {
	// s =P=> a1 -> a2, s =P=> b1 -> b2: every a is concurrent with every b.
	g := newGraph(t, "s", "a1", "a2", "b1", "b2")
	addEdges(t, g,
		graph.Edge{From: "s", To: "a1", Parallel: true},
		graph.Edge{From: "a1", To: "a2"},
		graph.Edge{From: "s", To: "b1", Parallel: true},
		graph.Edge{From: "b1", To: "b2"},
	)

	want := []Pair{
		{U: "a1", V: "b1", Ancestor: "s"},
		{U: "a1", V: "b2", Ancestor: "s"},
		{U: "a2", V: "b1", Ancestor: "s"},
		{U: "a2", V: "b2", Ancestor: "s"},
	}
	if diff := cmp.Diff(want, InferConcurrency(g)); diff != "" {
		t.Errorf("InferConcurrency() mismatch (-want +got):\n%s", diff)
	}
}

func TestInferConcurrency_NoCommonAncestor(t *testing.T) {
	g := newGraph(t, "s1", "s2", "a", "b")
	addEdges(t, g,
		graph.Edge{From: "s1", To: "a", Parallel: true},
		graph.Edge{From: "s2", To: "b", Parallel: true},
	)

	if pairs := InferConcurrency(g); len(pairs) != 0 {
		t.Errorf("InferConcurrency() = %v, want none", pairs)
	}
}

func TestLowestCommonAncestor_Descends(t *testing.T) {
	// r -> m -> a, m -> b: the lca of a and b is m, not r.
	g := newGraph(t, "r", "m", "a", "b")
	addEdges(t, g,
		graph.Edge{From: "r", To: "m"},
		graph.Edge{From: "m", To: "a"},
		graph.Edge{From: "m", To: "b"},
	)
	anc := func(id string) map[string]bool {
		s := g.Ancestors(id)
		s[id] = true
		return s
	}

	lca, ok := lowestCommonAncestor(g, anc("a"), anc("b"), g.NodeIDs(), g.Index())
	if !ok || lca != "m" {
		t.Errorf("lowestCommonAncestor(a, b) = %q, %v; want m", lca, ok)
	}
	lca, ok = lowestCommonAncestor(g, anc("m"), anc("b"), g.NodeIDs(), g.Index())
	if !ok || lca != "m" {
		t.Errorf("lowestCommonAncestor(m, b) = %q, %v; want m", lca, ok)
	}
}

func TestAddConcurrency_SymmetricAndIdempotent(t *testing.T) {
	g := newGraph(t, "a", "b")
	addEdges(t, g, graph.Edge{From: "a", To: "b", Parallel: true})
	pairs := []Pair{{U: "a", V: "b"}}

	for i := 0; i < 2; i++ {
		if err := AddConcurrency(g, pairs); err != nil {
			t.Fatalf("AddConcurrency() error: %v", err)
		}
	}

	want := []graph.Edge{
		{From: "a", To: "b", Parallel: true, Concurrent: true},
		{From: "b", To: "a", Concurrent: true},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestAddConcurrency_UnknownNode(t *testing.T) {
	g := newGraph(t, "a")
	if err := AddConcurrency(g, []Pair{{U: "a", V: "zz"}}); err == nil {
		t.Error("AddConcurrency() with unknown node should fail")
	}
}
