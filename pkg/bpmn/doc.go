// Package bpmn reads business-process documents and classifies their
// elements.
//
// # Documents
//
// [Parse] and [ParseFile] turn an XML document into a generic tree of
// [XMLElement] values. Tag and attribute names are kept verbatim with their
// namespace prefix, so "bpmn:task" and "task" are distinct tags.
//
// # Schemes
//
// A [Scheme] names the tags a document uses. Three presets are available
// through [SchemeByName]:
//
//   - standard: "bpmn:" prefixed tags, "task" activities, any number of
//     start and end events (the [DefaultScheme])
//   - bare: unprefixed tags, otherwise like standard
//   - usertask: "bpmn:" prefixed tags, "userTask" activities, exactly one
//     start and one end event
//
// # Classification
//
// [Classify] walks the document once and returns a [Classified] value with
// one ordered slice of [Element] per construct kind:
//
//	doc, err := bpmn.ParseFile("order.bpmn")
//	if err != nil {
//	    return err
//	}
//	c, err := bpmn.Classify(doc, bpmn.DefaultScheme())
//
// Elements carry their incoming and outgoing references in document order.
// The kind of an element is a [graph.Kind], decided once here and never
// compared as a string again.
package bpmn
