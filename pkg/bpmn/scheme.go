package bpmn

import (
	"fmt"
	"sort"

	"github.com/matzehuels/bpmngraph/pkg/graph"
)

// Scheme describes how diagram constructs are spelled in a document.
//
// The zero value matches bare tag names ("task", "startEvent") and accepts
// any number of start and end events.
type Scheme struct {
	// Prefix is the namespace token in front of every tag ("bpmn" matches
	// "bpmn:task"). Empty matches unprefixed tags.
	Prefix string

	// TaskTag is the local tag name of activities. Defaults to "task".
	TaskTag string

	// SingleStartEnd requires exactly one start event and one end event.
	SingleStartEnd bool
}

// Preset names accepted by [SchemeByName].
const (
	SchemeStandard = "standard"
	SchemeBare     = "bare"
	SchemeUserTask = "usertask"
)

var presets = map[string]Scheme{
	SchemeStandard: {Prefix: "bpmn", TaskTag: "task"},
	SchemeBare:     {TaskTag: "task"},
	SchemeUserTask: {Prefix: "bpmn", TaskTag: "userTask", SingleStartEnd: true},
}

// DefaultScheme returns the namespaced scheme produced by common modelers:
// "bpmn:" prefixed tags, plain tasks, any number of start and end events.
func DefaultScheme() Scheme { return presets[SchemeStandard] }

// SchemeByName returns a preset scheme.
func SchemeByName(name string) (Scheme, error) {
	s, ok := presets[name]
	if !ok {
		return Scheme{}, fmt.Errorf("unknown scheme %q (must be one of %v)", name, SchemeNames())
	}
	return s, nil
}

// SchemeNames returns the preset names in sorted order.
func SchemeNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Tag returns the fully qualified tag for a local name under this scheme.
func (s Scheme) Tag(local string) string {
	if s.Prefix == "" {
		return local
	}
	return s.Prefix + ":" + local
}

func (s Scheme) taskTag() string {
	if s.TaskTag == "" {
		return "task"
	}
	return s.TaskTag
}

// kinds maps each qualified element tag to the construct it denotes.
func (s Scheme) kinds() map[string]graph.Kind {
	return map[string]graph.Kind{
		s.Tag("startEvent"):       graph.KindStartEvent,
		s.Tag("endEvent"):         graph.KindEndEvent,
		s.Tag(s.taskTag()):        graph.KindTask,
		s.Tag("sequenceFlow"):     graph.KindSequenceFlow,
		s.Tag("parallelGateway"):  graph.KindParallelGateway,
		s.Tag("exclusiveGateway"): graph.KindExclusiveGateway,
	}
}
