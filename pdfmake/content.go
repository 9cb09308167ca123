package pdfmake

import "encoding/json"

// Attributes is an opaque set of pdfmake properties (fontSize, bold, margin,
// link, ...). Values are forwarded verbatim into the emitted JSON.
type Attributes map[string]interface{}

// merge returns a new set with the keys of every set applied in order, so
// later sets win. It returns nil when there is nothing to merge.
func merge(sets ...Attributes) Attributes {
	var out Attributes
	for _, set := range sets {
		for k, v := range set {
			if out == nil {
				out = make(Attributes, len(set))
			}
			out[k] = v
		}
	}
	return out
}

// Content is a node of a pdfmake document definition. It is implemented by
// Text, Composite, List and Group only.
type Content interface {
	content()
}

// Text is a leaf run of text.
type Text struct {
	Text  string
	Attrs Attributes
}

// Composite is a run of inline nodes sharing the block level Attrs.
type Composite struct {
	Nodes []Content
	Attrs Attributes
}

// List is a bulleted (ul) or numbered (ol) list.
type List struct {
	Ordered bool
	Items   []Content
	Attrs   Attributes
}

// Group is a bare sequence of nodes. An empty Group is the result of
// elements that contribute nothing.
type Group []Content

func (Text) content()      {}
func (Composite) content() {}
func (List) content()      {}
func (Group) content()     {}

func (t Text) MarshalJSON() ([]byte, error) {
	return marshalNode(t.Attrs, "text", t.Text)
}

func (c Composite) MarshalJSON() ([]byte, error) {
	nodes := c.Nodes
	if nodes == nil {
		nodes = []Content{}
	}
	return marshalNode(c.Attrs, "text", nodes)
}

func (l List) MarshalJSON() ([]byte, error) {
	items := l.Items
	if items == nil {
		items = []Content{}
	}
	if l.Ordered {
		return marshalNode(l.Attrs, "ol", items)
	}
	return marshalNode(l.Attrs, "ul", items)
}

func (g Group) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Content(g))
}

// marshalNode writes attrs and the payload as one object. The payload key
// always wins over an attribute of the same name.
func marshalNode(attrs Attributes, key string, payload interface{}) ([]byte, error) {
	obj := make(map[string]interface{}, len(attrs)+1)
	for k, v := range attrs {
		obj[k] = v
	}
	obj[key] = payload
	return json.Marshal(obj)
}

// Document is a pdfmake document definition.
type Document struct {
	Content      []Content  `json:"content"`
	DefaultStyle Attributes `json:"defaultStyle,omitempty"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	type document Document
	doc := document(d)
	if doc.Content == nil {
		doc.Content = []Content{}
	}
	return json.Marshal(doc)
}
