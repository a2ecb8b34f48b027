// Package nodelink renders process graphs as node-link diagrams.
//
// This is the diagnostic view behind the CLI's --show flag. It has no
// effect on the exported matrix.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Styling
//
//   - Start events: circle, end events: double circle, tasks: rounded box
//   - Parallel-split edges: bold
//   - Concurrency edges: dashed grey, excluded from rank assignment
//
// Rendering uses the WebAssembly build of Graphviz bundled with
// github.com/goccy/go-graphviz, so no system Graphviz install is needed.
package nodelink
