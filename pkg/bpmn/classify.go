package bpmn

import (
	"github.com/matzehuels/bpmngraph/pkg/errors"
	"github.com/matzehuels/bpmngraph/pkg/graph"
)

// Classify scans doc and partitions every recognized element by kind.
//
// Elements are matched by their qualified tag under s; unrecognized
// elements are ignored. The children of each element are recorded as
// [Ref] values in document order; children that are neither incoming nor
// outgoing references are kept with [DirectionOther] so the graph builder
// can reject them.
//
// Classify returns a STRUCTURAL error if a recognized element has no id, or
// if s.SingleStartEnd is set and the document does not contain exactly one
// start event and exactly one end event.
func Classify(doc *Document, s Scheme) (*Classified, error) {
	kinds := s.kinds()
	incoming, outgoing := s.Tag("incoming"), s.Tag("outgoing")

	var (
		c   Classified
		err error
	)
	doc.Walk(func(x *XMLElement) {
		if err != nil {
			return
		}
		kind, ok := kinds[x.Tag]
		if !ok {
			return
		}
		id := x.Attr("id")
		if id == "" {
			err = errors.New(errors.ErrCodeStructural, "<%s> element without id", x.Tag)
			return
		}

		el := Element{ID: id, Kind: kind, Name: x.Attr("name")}
		for _, child := range x.Children {
			ref := Ref{ID: child.Text, Tag: child.Tag}
			switch child.Tag {
			case incoming:
				ref.Direction = DirectionIncoming
			case outgoing:
				ref.Direction = DirectionOutgoing
			}
			el.Refs = append(el.Refs, ref)
		}

		switch kind {
		case graph.KindStartEvent:
			c.StartEvents = append(c.StartEvents, el)
		case graph.KindEndEvent:
			c.EndEvents = append(c.EndEvents, el)
		case graph.KindTask:
			c.Tasks = append(c.Tasks, el)
		case graph.KindSequenceFlow:
			c.SequenceFlows = append(c.SequenceFlows, el)
		case graph.KindParallelGateway:
			c.ParallelGateways = append(c.ParallelGateways, el)
		case graph.KindExclusiveGateway:
			c.ExclusiveGateways = append(c.ExclusiveGateways, el)
		}
	})
	if err != nil {
		return nil, err
	}

	if s.SingleStartEnd {
		if n := len(c.StartEvents); n != 1 {
			return nil, errors.New(errors.ErrCodeStructural, "expected exactly one %s, found %d", s.Tag("startEvent"), n)
		}
		if n := len(c.EndEvents); n != 1 {
			return nil, errors.New(errors.ErrCodeStructural, "expected exactly one %s, found %d", s.Tag("endEvent"), n)
		}
	}
	return &c, nil
}
