package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// RootName is the only element name accepted as a document root.
const RootName = "svg"

// Parser builds a Document from SVG source text.
type Parser struct {
	filename string
	src      string
}

// NewParser creates a parser for src. filename is used only in error positions
// and may be empty.
func NewParser(filename, src string) *Parser {
	return &Parser{filename: filename, src: src}
}

// Parse is shorthand for NewParser("", src).Parse().
func Parse(src string) (*Document, error) {
	return NewParser("", src).Parse()
}

// Parse decodes the source into a Document. Any failure is returned as a
// *ParseError.
//
// The decoder runs in raw mode so namespace prefixes stay as written; element
// nesting is checked here instead.
func (p *Parser) Parse() (*Document, error) {
	d := xml.NewDecoder(strings.NewReader(p.src))
	d.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)

	for {
		pos := p.pos(d)
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, p.decodeError(d, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el, perr := p.newElement(t, pos)
			if perr != nil {
				return nil, perr
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, newErrorWithHint(pos,
						fmt.Sprintf("unexpected second root element <%s>", el.Name),
						"a document has exactly one root element")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(stack) == 0 {
				return nil, newErrorf(pos, "unexpected closing tag </%s>", name)
			}
			open := stack[len(stack)-1]
			if open.Name != name {
				return nil, newErrorWithHint(pos,
					fmt.Sprintf("closing tag </%s> does not match <%s>", name, open.Name),
					fmt.Sprintf("<%s> opened at %s", open.Name, open.Position))
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if strings.TrimSpace(string(t)) != "" {
					return nil, newErrorf(pos, "text outside the root element")
				}
				continue
			}
			appendText(stack[len(stack)-1], string(t))

		case xml.Comment:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, &Comment{Data: string(t)})
			}

		case xml.ProcInst, xml.Directive:
			// prolog and doctype are not part of the tree
		}
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, newErrorWithHint(p.pos(d),
			fmt.Sprintf("unexpected end of input inside <%s>", open.Name),
			fmt.Sprintf("<%s> opened at %s is never closed", open.Name, open.Position))
	}
	if root == nil {
		return nil, newErrorf(p.pos(d), "no root element")
	}
	if root.Name != RootName {
		return nil, newErrorWithHint(root.Position,
			fmt.Sprintf("root element is <%s>, not <%s>", root.Name, RootName),
			"input must be an SVG document")
	}

	return &Document{Root: root}, nil
}

// newElement converts a start token into an Element, rejecting duplicate attributes.
func (p *Parser) newElement(t xml.StartElement, pos Position) (*Element, *ParseError) {
	el := &Element{Name: qualifiedName(t.Name), Position: pos}
	if len(t.Attr) == 0 {
		return el, nil
	}

	el.Attrs = make([]Attr, 0, len(t.Attr))
	seen := make(map[string]bool, len(t.Attr))
	for _, a := range t.Attr {
		name := qualifiedName(a.Name)
		if seen[name] {
			return nil, newErrorWithHint(pos,
				fmt.Sprintf("duplicate attribute %q on <%s>", name, el.Name),
				"an attribute may appear only once per element")
		}
		seen[name] = true
		el.Attrs = append(el.Attrs, Attr{Name: name, Value: normalizeAttrValue(a.Value)})
	}
	return el, nil
}

// decodeError converts an encoding/xml error into a ParseError.
func (p *Parser) decodeError(d *xml.Decoder, err error) *ParseError {
	pos := p.pos(d)
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		pos.Line = se.Line
		return newErrorf(pos, "%s", se.Msg)
	}
	return newErrorf(pos, "%s", strings.TrimPrefix(err.Error(), "xml: "))
}

func (p *Parser) pos(d *xml.Decoder) Position {
	line, col := d.InputPos()
	return Position{File: p.filename, Line: line, Column: col}
}

// appendText adds character data to el, merging with a preceding text node so
// that CDATA sections and entity-split runs form a single Text.
func appendText(el *Element, data string) {
	if n := len(el.Children); n > 0 {
		if prev, ok := el.Children[n-1].(*Text); ok {
			prev.Data += data
			return
		}
	}
	el.Children = append(el.Children, &Text{Data: data})
}

// qualifiedName joins a raw prefix and local name ("xlink:href").
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// attrWhitespace applies XML attribute-value normalization for literal
// whitespace characters.
var attrWhitespace = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func normalizeAttrValue(v string) string {
	return attrWhitespace.Replace(v)
}
