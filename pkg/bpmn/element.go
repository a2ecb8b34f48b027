package bpmn

import "github.com/matzehuels/bpmngraph/pkg/graph"

// Direction is the kind of a child reference of an element.
type Direction int

const (
	// DirectionOther marks a child element that is not a flow reference.
	DirectionOther Direction = iota
	DirectionIncoming
	DirectionOutgoing
)

func (d Direction) String() string {
	switch d {
	case DirectionIncoming:
		return "incoming"
	case DirectionOutgoing:
		return "outgoing"
	}
	return "other"
}

// Ref is one child of an element, in document order.
type Ref struct {
	Direction Direction
	ID        string // referenced id, trimmed
	Tag       string // child tag as written
}

// Element is one diagram construct. Elements are created by [Classify]
// and not modified afterwards.
type Element struct {
	ID   string
	Kind graph.Kind
	Name string
	Refs []Ref
}

// IncomingRefs returns the ids referenced by incoming children, in order.
func (e Element) IncomingRefs() []string { return e.refs(DirectionIncoming) }

// OutgoingRefs returns the ids referenced by outgoing children, in order.
func (e Element) OutgoingRefs() []string { return e.refs(DirectionOutgoing) }

func (e Element) refs(dir Direction) []string {
	var ids []string
	for _, r := range e.Refs {
		if r.Direction == dir {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Classified partitions the elements of a document by kind. Each slice
// keeps document order.
type Classified struct {
	StartEvents       []Element
	EndEvents         []Element
	Tasks             []Element
	SequenceFlows     []Element
	ParallelGateways  []Element
	ExclusiveGateways []Element
}

// Nodes returns every non-flow element: start events, end events, tasks,
// parallel gateways and exclusive gateways, in that order.
func (c *Classified) Nodes() []Element {
	var out []Element
	out = append(out, c.StartEvents...)
	out = append(out, c.EndEvents...)
	out = append(out, c.Tasks...)
	out = append(out, c.ParallelGateways...)
	out = append(out, c.ExclusiveGateways...)
	return out
}

// Len returns the total number of classified elements.
func (c *Classified) Len() int {
	return len(c.StartEvents) + len(c.EndEvents) + len(c.Tasks) +
		len(c.SequenceFlows) + len(c.ParallelGateways) + len(c.ExclusiveGateways)
}

// IDs returns the ids of the given elements.
func IDs(elems []Element) []string {
	ids := make([]string, len(elems))
	for i, e := range elems {
		ids[i] = e.ID
	}
	return ids
}
