package transform

import (
	"fmt"

	"github.com/matzehuels/bpmngraph/pkg/bpmn"
	"github.com/matzehuels/bpmngraph/pkg/errors"
	"github.com/matzehuels/bpmngraph/pkg/graph"
)

// ReferencePolicy decides what happens to an incoming or outgoing
// reference whose target id has no node.
type ReferencePolicy int

const (
	// ReferencesError fails the build with an UNRESOLVED_REFERENCE error.
	ReferencesError ReferencePolicy = iota
	// ReferencesWarn drops the dangling edge and reports it through
	// BuildOptions.Logger.
	ReferencesWarn
)

// ParseReferencePolicy maps "error" and "warn" to a policy. The empty
// string selects ReferencesError.
func ParseReferencePolicy(s string) (ReferencePolicy, error) {
	switch s {
	case "", "error":
		return ReferencesError, nil
	case "warn":
		return ReferencesWarn, nil
	}
	return 0, fmt.Errorf("unknown reference policy %q (must be 'error' or 'warn')", s)
}

func (p ReferencePolicy) String() string {
	if p == ReferencesWarn {
		return "warn"
	}
	return "error"
}

// BuildOptions configures [Build].
type BuildOptions struct {
	References ReferencePolicy

	// Logger receives warnings about dropped references. May be nil.
	Logger func(format string, args ...any)
}

// Build creates the raw element graph from classified elements.
//
// One node is added per element: start events, end events, tasks, parallel
// gateways and exclusive gateways first, sequence flows last. Edges are
// then read from the incoming and outgoing references of every non-flow
// element: an incoming reference r of node n yields r→n, an outgoing
// reference yields n→r. Sequence flows are connected only through the
// references of the elements around them.
//
// Build returns a STRUCTURAL error for duplicate ids and for children that
// are neither incoming nor outgoing references, and an UNRESOLVED_REFERENCE
// error for a dangling reference unless opts.References is ReferencesWarn.
func Build(c *bpmn.Classified, opts BuildOptions) (*graph.Graph, error) {
	g := graph.New()
	nodes := c.Nodes()

	for _, el := range append(nodes, c.SequenceFlows...) {
		if err := g.AddNode(graph.Node{ID: el.ID, Kind: el.Kind, Name: el.Name}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStructural, err, "%s %s", el.Kind, el.ID)
		}
	}

	for _, el := range nodes {
		for _, ref := range el.Refs {
			var e graph.Edge
			switch ref.Direction {
			case bpmn.DirectionIncoming:
				e = graph.Edge{From: ref.ID, To: el.ID}
			case bpmn.DirectionOutgoing:
				e = graph.Edge{From: el.ID, To: ref.ID}
			default:
				return nil, errors.New(errors.ErrCodeStructural,
					"%s %s: child <%s> is neither an incoming nor an outgoing reference", el.Kind, el.ID, ref.Tag)
			}

			if !g.HasNode(ref.ID) {
				refErr := &errors.ReferenceError{ElementID: el.ID, RefID: ref.ID, Direction: ref.Direction.String()}
				if opts.References != ReferencesWarn {
					return nil, errors.Wrap(errors.ErrCodeUnresolvedReference, refErr, "build graph")
				}
				if opts.Logger != nil {
					opts.Logger("dropping edge: %v", refErr)
				}
				continue
			}
			if err := g.AddEdge(e); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "edge %s->%s", e.From, e.To)
			}
		}
	}
	return g, nil
}
