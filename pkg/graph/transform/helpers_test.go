package transform

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/bpmngraph/pkg/bpmn"
	"github.com/matzehuels/bpmngraph/pkg/graph"
)

// classify parses a bare-tag document.
func classify(t *testing.T, src string) *bpmn.Classified {
	t.Helper()
	doc, err := bpmn.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	c, err := bpmn.Classify(doc, bpmn.Scheme{})
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	return c
}

func newGraph(t *testing.T, ids ...string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range ids {
		if err := g.AddNode(graph.Node{ID: id, Kind: graph.KindTask}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	return g
}

func addEdges(t *testing.T, g *graph.Graph, edges ...graph.Edge) {
	t.Helper()
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e.From, e.To, err)
		}
	}
}

// Scenario A: an exclusive decision after T1.
const exclusiveSplit = `<definitions><process>
  <startEvent id="S"><outgoing>F1</outgoing></startEvent>
  <task id="T1"><incoming>F1</incoming><outgoing>F2</outgoing></task>
  <exclusiveGateway id="X"><incoming>F2</incoming><outgoing>F3</outgoing><outgoing>F4</outgoing></exclusiveGateway>
  <task id="T2"><incoming>F3</incoming><outgoing>F5</outgoing></task>
  <task id="T3"><incoming>F4</incoming><outgoing>F6</outgoing></task>
  <endEvent id="E"><incoming>F5</incoming><incoming>F6</incoming></endEvent>
  <sequenceFlow id="F1"/><sequenceFlow id="F2"/><sequenceFlow id="F3"/>
  <sequenceFlow id="F4"/><sequenceFlow id="F5"/><sequenceFlow id="F6"/>
</process></definitions>`

// Scenario B: a parallel split and join between S and E.
const parallelSplit = `<definitions><process>
  <startEvent id="S"><outgoing>F1</outgoing></startEvent>
  <parallelGateway id="P1"><incoming>F1</incoming><outgoing>F2</outgoing><outgoing>F3</outgoing></parallelGateway>
  <task id="T1"><incoming>F2</incoming><outgoing>F4</outgoing></task>
  <task id="T2"><incoming>F3</incoming><outgoing>F5</outgoing></task>
  <parallelGateway id="P2"><incoming>F4</incoming><incoming>F5</incoming><outgoing>F6</outgoing></parallelGateway>
  <endEvent id="E"><incoming>F6</incoming></endEvent>
  <sequenceFlow id="F1"/><sequenceFlow id="F2"/><sequenceFlow id="F3"/>
  <sequenceFlow id="F4"/><sequenceFlow id="F5"/><sequenceFlow id="F6"/>
</process></definitions>`

// Scenario C: T1 loops back to itself through an exclusive gateway.
const loop = `<definitions><process>
  <startEvent id="S"><outgoing>F1</outgoing></startEvent>
  <task id="T1"><incoming>F1</incoming><incoming>F3</incoming><outgoing>F2</outgoing></task>
  <exclusiveGateway id="X"><incoming>F2</incoming><outgoing>F3</outgoing><outgoing>F4</outgoing></exclusiveGateway>
  <task id="T2"><incoming>F4</incoming><outgoing>F5</outgoing></task>
  <endEvent id="E"><incoming>F5</incoming></endEvent>
  <sequenceFlow id="F1"/><sequenceFlow id="F2"/><sequenceFlow id="F3"/>
  <sequenceFlow id="F4"/><sequenceFlow id="F5"/>
</process></definitions>`

var sortEdges = cmpopts.SortSlices(func(a, b graph.Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
})
