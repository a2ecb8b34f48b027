// Package pkg provides the core libraries for bpmngraph.
//
// # Overview
//
// bpmngraph lowers a BPMN process document into the adjacency matrix of its
// start events, end events and tasks. Sequence flows and gateways disappear
// into direct edges, and tasks that may run at the same time are connected
// in both directions.
//
// # Architecture
//
// The data flow through bpmngraph:
//
//	BPMN document (XML)
//	         ↓
//	    [bpmn] package (generic element tree + element classification)
//	         ↓
//	    [graph/transform] package (build, collapse, cycle reduction, concurrency)
//	         ↓
//	    [io] package (adjacency matrix as .npy or .json)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/bpmngraph/pkg/bpmn"
//	    "github.com/matzehuels/bpmngraph/pkg/graph/transform"
//	    "github.com/matzehuels/bpmngraph/pkg/io"
//	)
//
//	doc, _ := bpmn.ParseFile("order.bpmn")
//	elems, _ := bpmn.Classify(doc, bpmn.DefaultScheme())
//	res, _ := transform.Convert(elems, transform.BuildOptions{})
//	_ = io.Export(res.Output, "adj_matrix.npy")
//
// # Main Packages
//
// [bpmn] - Namespace-agnostic XML element tree, tag schemes (standard, bare,
// usertask) and the element classifier.
//
// [graph] - Ordered directed graph with set-semantics edges carrying
// parallel and concurrency flags, deep copies and cycle detection.
//
// [graph/transform] - The conversion phases: raw graph construction, routing
// collapse, cycle reduction and concurrency inference via lowest common
// ancestors.
//
// [io] - Adjacency matrix extraction, NumPy .npy writer and JSON export with
// atomic file replacement.
//
// [render/nodelink] - Graphviz DOT generation and SVG rendering of the
// converted graph.
//
// [pipeline] - Complete parse → convert → export pipeline used by the CLI.
//
// [config] - TOML configuration selecting the tag scheme and the policy
// for dangling references.
//
// [errors] - Structured errors with machine-readable codes.
//
// [observability] - Optional pipeline hooks for metrics and tracing.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/graph/...              # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [bpmn]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/bpmn
// [graph]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/graph
// [graph/transform]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/graph/transform
// [io]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/bpmngraph/pkg/observability
package pkg
