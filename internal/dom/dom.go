// Package dom implements the attributed-element tree that toolkit
// types serialize themselves to and from: named nodes carrying
// key/value string attributes and child elements, with an XML
// representation of the form <tag x=".." y=".." z=".." />.
package dom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Attr is a single name/value attribute on an element.
type Attr struct {
	Name  string
	Value string
}

// Element is a named tree node with ordered attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// SetAttribute sets the named attribute, replacing an existing value
// in place so attribute order stays stable.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Attribute returns the named attribute's value and whether it is
// present. Lookup is by name, never by position.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AppendChild attaches child as the last child of e.
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// Float reads the named attribute as a number. A missing or
// unparsable attribute yields def; this never fails.
func Float(e *Element, name string, def float64) float64 {
	s, ok := e.Attribute(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// Document is the node factory and root holder for one element tree.
type Document struct {
	root *Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement mints a new element with the given tag name. The
// element is not attached anywhere; attaching it is the caller's
// responsibility.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{Tag: tag}
}

// SetRoot makes el the document's root element.
func (d *Document) SetRoot(el *Element) {
	d.root = el
}

// Root returns the document's root element, or nil for an empty
// document.
func (d *Document) Root() *Element {
	return d.root
}

// WriteTo writes the document as XML. An empty document writes
// nothing.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if d.root == nil {
		return 0, nil
	}
	cw := &countingWriter{w: w}
	enc := xml.NewEncoder(cw)
	enc.Indent("", "  ")
	if err := encodeElement(enc, d.root); err != nil {
		return cw.n, err
	}
	if err := enc.Flush(); err != nil {
		return cw.n, err
	}
	_, err := io.WriteString(cw, "\n")
	return cw.n, err
}

// Parse reads one XML document from r into an element tree.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("dom: document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("dom: parse: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		root, err := decodeElement(dec, start)
		if err != nil {
			return nil, fmt.Errorf("dom: parse: %w", err)
		}
		doc := NewDocument()
		doc.SetRoot(root)
		return doc, nil
	}
}

func encodeElement(enc *xml.Encoder, el *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.Tag}}
	for _, a := range el.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := encodeElement(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (*Element, error) {
	el := &Element{Tag: start.Name.Local}
	for _, a := range start.Attr {
		el.SetAttribute(a.Name.Local, a.Value)
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			el.AppendChild(child)
		case xml.EndElement:
			return el, nil
		}
		// character data and comments between elements are dropped
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
