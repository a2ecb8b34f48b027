package bpmn

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/bpmngraph/pkg/errors"
	"github.com/matzehuels/bpmngraph/pkg/graph"
)

const orderProcess = `<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <bpmn:process id="P">
    <bpmn:startEvent id="S" name="Order received">
      <bpmn:outgoing>F1</bpmn:outgoing>
    </bpmn:startEvent>
    <bpmn:task id="T1" name="Check stock">
      <bpmn:incoming>F1</bpmn:incoming>
      <bpmn:outgoing>F2</bpmn:outgoing>
    </bpmn:task>
    <bpmn:exclusiveGateway id="G1">
      <bpmn:incoming>F2</bpmn:incoming>
    </bpmn:exclusiveGateway>
    <bpmn:parallelGateway id="G2"/>
    <bpmn:endEvent id="E">
      <bpmn:incoming>F3</bpmn:incoming>
    </bpmn:endEvent>
    <bpmn:dataObject id="D"/>
    <bpmn:sequenceFlow id="F1" sourceRef="S" targetRef="T1"/>
    <bpmn:sequenceFlow id="F2" sourceRef="T1" targetRef="G1"/>
    <bpmn:task id="T2"/>
  </bpmn:process>
</bpmn:definitions>`

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

func TestClassify_Standard(t *testing.T) {
	c, err := Classify(mustParse(t, orderProcess), DefaultScheme())
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}

	checks := []struct {
		name string
		got  []Element
		want []string
	}{
		{"start", c.StartEvents, []string{"S"}},
		{"end", c.EndEvents, []string{"E"}},
		{"tasks", c.Tasks, []string{"T1", "T2"}},
		{"flows", c.SequenceFlows, []string{"F1", "F2"}},
		{"parallel", c.ParallelGateways, []string{"G2"}},
		{"exclusive", c.ExclusiveGateways, []string{"G1"}},
	}
	for _, ck := range checks {
		if diff := cmp.Diff(ck.want, IDs(ck.got)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", ck.name, diff)
		}
	}
	if c.Len() != 8 {
		t.Errorf("Len() = %d, want 8", c.Len())
	}
	if diff := cmp.Diff([]string{"S", "E", "T1", "T2", "G2", "G1"}, IDs(c.Nodes())); diff != "" {
		t.Errorf("Nodes() order mismatch (-want +got):\n%s", diff)
	}

	t1 := c.Tasks[0]
	if t1.Kind != graph.KindTask || t1.Name != "Check stock" {
		t.Errorf("T1 = %+v", t1)
	}
	if diff := cmp.Diff([]string{"F1"}, t1.IncomingRefs()); diff != "" {
		t.Errorf("IncomingRefs() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"F2"}, t1.OutgoingRefs()); diff != "" {
		t.Errorf("OutgoingRefs() mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_WrongPrefixIgnored(t *testing.T) {
	c, err := Classify(mustParse(t, orderProcess), Scheme{TaskTag: "task"})
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("bare scheme matched %d prefixed elements, want 0", c.Len())
	}
}

func TestClassify_BareScheme(t *testing.T) {
	src := `<definitions><process>
  <startEvent id="S"><outgoing>F</outgoing></startEvent>
  <userTask id="U"/>
  <task id="T"><incoming> F </incoming><documentation>note</documentation></task>
  <sequenceFlow id="F"/>
</process></definitions>`

	s, err := SchemeByName(SchemeBare)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Classify(mustParse(t, src), s)
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if diff := cmp.Diff([]string{"T"}, IDs(c.Tasks)); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}

	want := []Ref{
		{Direction: DirectionIncoming, ID: "F", Tag: "incoming"},
		{Direction: DirectionOther, ID: "note", Tag: "documentation"},
	}
	if diff := cmp.Diff(want, c.Tasks[0].Refs); diff != "" {
		t.Errorf("Refs mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_UserTaskSingleStartEnd(t *testing.T) {
	s, _ := SchemeByName(SchemeUserTask)

	ok := `<bpmn:definitions><bpmn:startEvent id="S"/><bpmn:userTask id="U"/><bpmn:task id="T"/><bpmn:endEvent id="E"/></bpmn:definitions>`
	c, err := Classify(mustParse(t, ok), s)
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if diff := cmp.Diff([]string{"U"}, IDs(c.Tasks)); diff != "" {
		t.Errorf("tasks mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name string
		src  string
	}{
		{"no start", `<bpmn:definitions><bpmn:endEvent id="E"/></bpmn:definitions>`},
		{"two starts", `<bpmn:definitions><bpmn:startEvent id="S1"/><bpmn:startEvent id="S2"/><bpmn:endEvent id="E"/></bpmn:definitions>`},
		{"no end", `<bpmn:definitions><bpmn:startEvent id="S"/></bpmn:definitions>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(mustParse(t, tt.src), s)
			if !errors.Is(err, errors.ErrCodeStructural) {
				t.Errorf("Classify() error = %v, want STRUCTURAL", err)
			}
		})
	}
}

func TestClassify_MultipleStartEndAllowed(t *testing.T) {
	src := `<bpmn:definitions><bpmn:startEvent id="S1"/><bpmn:startEvent id="S2"/></bpmn:definitions>`
	c, err := Classify(mustParse(t, src), DefaultScheme())
	if err != nil {
		t.Fatalf("Classify() error: %v", err)
	}
	if len(c.StartEvents) != 2 || len(c.EndEvents) != 0 {
		t.Errorf("got %d starts, %d ends", len(c.StartEvents), len(c.EndEvents))
	}
}

func TestClassify_MissingID(t *testing.T) {
	src := `<bpmn:definitions><bpmn:task name="anonymous"/></bpmn:definitions>`
	_, err := Classify(mustParse(t, src), DefaultScheme())
	if !errors.Is(err, errors.ErrCodeStructural) {
		t.Errorf("Classify() error = %v, want STRUCTURAL", err)
	}
}

func TestSchemeByName(t *testing.T) {
	if _, err := SchemeByName("camunda"); err == nil {
		t.Error("SchemeByName(camunda) should fail")
	}
	if diff := cmp.Diff([]string{"bare", "standard", "usertask"}, SchemeNames()); diff != "" {
		t.Errorf("SchemeNames() mismatch (-want +got):\n%s", diff)
	}
	if got := (Scheme{Prefix: "semantic"}).Tag("task"); got != "semantic:task" {
		t.Errorf("Tag() = %q, want semantic:task", got)
	}
}
