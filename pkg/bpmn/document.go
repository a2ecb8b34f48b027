package bpmn

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/bpmngraph/pkg/errors"
)

// XMLElement is one element of a parsed document tree.
//
// Tags and attribute names are kept exactly as written, including any
// namespace prefix ("bpmn:task"), because tag schemes match on the
// literal prefixed name rather than on the resolved namespace URI.
type XMLElement struct {
	Tag      string
	Attrs    map[string]string
	Children []*XMLElement
	Text     string // character data directly inside the element, trimmed
}

// Attr returns the value of the named attribute, or "" if absent.
func (e *XMLElement) Attr(name string) string { return e.Attrs[name] }

// Document is a parsed XML document.
type Document struct {
	Root *XMLElement
}

// Walk calls fn for every element of the document in document order
// (pre-order, parents before children).
func (d *Document) Walk(fn func(*XMLElement)) {
	if d == nil || d.Root == nil {
		return
	}
	var visit func(*XMLElement)
	visit = func(e *XMLElement) {
		fn(e)
		for _, c := range e.Children {
			visit(c)
		}
	}
	visit(d.Root)
}

// Parse reads an XML document from r.
//
// Parse returns a DOCUMENT_PARSE error if the input is not well-formed:
// mismatched or unclosed tags, a missing root element, or invalid XML syntax.
// Parse does not close r.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *XMLElement
		stack []*XMLElement
		text  []*strings.Builder
	)
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDocumentParse, err, "decode")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &XMLElement{Tag: rawName(t.Name), Attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.Attrs[rawName(a.Name)] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New(errors.ErrCodeDocumentParse, "multiple root elements: <%s> after <%s>", el.Tag, root.Tag)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeDocumentParse, "unexpected closing tag </%s>", rawName(t.Name))
			}
			top := stack[len(stack)-1]
			if name := rawName(t.Name); name != top.Tag {
				return nil, errors.New(errors.ErrCodeDocumentParse, "closing tag </%s> does not match <%s>", name, top.Tag)
			}
			top.Text = strings.TrimSpace(text[len(text)-1].String())
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			} else if len(bytes.TrimSpace(t)) > 0 {
				return nil, errors.New(errors.ErrCodeDocumentParse, "character data outside root element")
			}
		}
	}

	if len(stack) > 0 {
		return nil, errors.New(errors.ErrCodeDocumentParse, "unclosed element <%s>", stack[len(stack)-1].Tag)
	}
	if root == nil {
		return nil, errors.New(errors.ErrCodeDocumentParse, "document has no root element")
	}
	return &Document{Root: root}, nil
}

// ParseFile opens the file at path and parses it with [Parse].
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDocumentParse, err, "parse %s", path)
	}
	return doc, nil
}

func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
