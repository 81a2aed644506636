package svgdoc

// Node is implemented by everything that can appear as an element child.
type Node interface {
	node() // marker method to ensure type safety
}

// Document is a parsed SVG source file.
type Document struct {
	Root *Element
}

// Attr is a single attribute. Name keeps its namespace prefix ("xlink:href").
type Attr struct {
	Name  string
	Value string
}

// Element is an XML element with ordered attributes and children.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []Node
	Position Position
}

// Text is character data. Data holds the decoded (unescaped) text.
type Text struct {
	Data string
}

// Comment is an XML comment without its <!-- --> delimiters.
type Comment struct {
	Data string
}

func (*Element) node() {}
func (*Text) node()    {}
func (*Comment) node() {}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the value of the named attribute in place, or appends the
// attribute when it is not present.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// RemoveAttr deletes the named attribute. It reports whether anything was removed.
func (e *Element) RemoveAttr(name string) bool {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Elements returns the element children of e, skipping text and comments.
func (e *Element) Elements() []*Element {
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Clone returns a deep copy of the subtree rooted at e.
func (e *Element) Clone() *Element {
	out := &Element{
		Name:     e.Name,
		Position: e.Position,
	}
	if len(e.Attrs) > 0 {
		out.Attrs = make([]Attr, len(e.Attrs))
		copy(out.Attrs, e.Attrs)
	}
	if len(e.Children) > 0 {
		out.Children = make([]Node, 0, len(e.Children))
	}
	for _, c := range e.Children {
		switch n := c.(type) {
		case *Element:
			out.Children = append(out.Children, n.Clone())
		case *Text:
			out.Children = append(out.Children, &Text{Data: n.Data})
		case *Comment:
			out.Children = append(out.Children, &Comment{Data: n.Data})
		}
	}
	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{Root: d.Root.Clone()}
}

// Walk calls fn for e and every descendant element, parents before children.
func Walk(e *Element, fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			Walk(el, fn)
		}
	}
}
