package svgcomp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/grindlemire/svgc/internal/svgdoc"
)

// CurrentColor replaces explicit fill and stroke colors.
const CurrentColor = "currentColor"

// CamelCaseAttr removes every hyphen that is followed by a letter and
// upper-cases that letter: stroke-linecap -> strokeLinecap. Other characters,
// including namespace colons, are kept.
func CamelCaseAttr(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}

	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		if r == '-' && i+size < len(name) {
			next, nsize := utf8.DecodeRuneInString(name[i+size:])
			if unicode.IsLetter(next) {
				sb.WriteRune(unicode.ToUpper(next))
				i += size + nsize
				continue
			}
		}
		sb.WriteRune(r)
		i += size
	}
	return sb.String()
}

// RewriteValue applies the currentColor convention. name is the attribute
// name before camel-casing.
func RewriteValue(name, value string) string {
	if (name == "fill" || name == "stroke") && value != "none" {
		return CurrentColor
	}
	return value
}

// RewriteAttr rewrites both the name and value of a single attribute.
func RewriteAttr(a svgdoc.Attr) svgdoc.Attr {
	return svgdoc.Attr{
		Name:  CamelCaseAttr(a.Name),
		Value: RewriteValue(a.Name, a.Value),
	}
}

// rewriteRootAttrs filters the root attributes through the profile and
// rewrites the survivors, keeping their original order.
func rewriteRootAttrs(root *svgdoc.Element, p Profile) []svgdoc.Attr {
	out := make([]svgdoc.Attr, 0, len(root.Attrs))
	for _, a := range root.Attrs {
		if p.omits(a.Name) {
			continue
		}
		out = append(out, RewriteAttr(a))
	}
	return out
}

// rewriteDescendants rewrites every element below root in place: id is
// removed and the remaining attributes pass through RewriteAttr. Text and
// comments are left untouched.
func rewriteDescendants(root *svgdoc.Element) {
	for _, child := range root.Elements() {
		svgdoc.Walk(child, func(el *svgdoc.Element) {
			attrs := el.Attrs[:0]
			for _, a := range el.Attrs {
				if a.Name == "id" {
					continue
				}
				attrs = append(attrs, RewriteAttr(a))
			}
			el.Attrs = attrs
		})
	}
}
