package svgdoc

import "strings"

// SerializeOptions controls markup output.
type SerializeOptions struct {
	// ExpandEmpty writes childless elements as an explicit open/close pair
	// (<path></path>) instead of the self-closing form (<path/>).
	ExpandEmpty bool
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// EscapeAttr escapes s for use inside a double-quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// FormatAttrs renders attrs as name="value" pairs joined by single spaces.
func FormatAttrs(attrs []Attr) string {
	var sb strings.Builder
	for i, a := range attrs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeAttr(&sb, a)
	}
	return sb.String()
}

// Serialize returns the markup for e including its own tags.
func (e *Element) Serialize(opts SerializeOptions) string {
	var sb strings.Builder
	writeElement(&sb, e, opts)
	return sb.String()
}

// InnerXML returns the markup of e's children.
func (e *Element) InnerXML(opts SerializeOptions) string {
	var sb strings.Builder
	writeChildren(&sb, e, opts)
	return sb.String()
}

// String returns the document markup with self-closing empty elements.
func (d *Document) String() string {
	return d.Root.Serialize(SerializeOptions{})
}

func writeElement(sb *strings.Builder, e *Element, opts SerializeOptions) {
	sb.WriteByte('<')
	sb.WriteString(e.Name)
	for _, a := range e.Attrs {
		sb.WriteByte(' ')
		writeAttr(sb, a)
	}

	if len(e.Children) == 0 && !opts.ExpandEmpty {
		sb.WriteString("/>")
		return
	}

	sb.WriteByte('>')
	writeChildren(sb, e, opts)
	sb.WriteString("</")
	sb.WriteString(e.Name)
	sb.WriteByte('>')
}

func writeChildren(sb *strings.Builder, e *Element, opts SerializeOptions) {
	for _, c := range e.Children {
		switch n := c.(type) {
		case *Element:
			writeElement(sb, n, opts)
		case *Text:
			sb.WriteString(textEscaper.Replace(n.Data))
		case *Comment:
			sb.WriteString("<!--")
			sb.WriteString(n.Data)
			sb.WriteString("-->")
		}
	}
}

func writeAttr(sb *strings.Builder, a Attr) {
	sb.WriteString(a.Name)
	sb.WriteString(`="`)
	sb.WriteString(attrEscaper.Replace(a.Value))
	sb.WriteByte('"')
}
