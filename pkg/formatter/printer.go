package formatter

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/grindlemire/svgc/internal/svgdoc"
)

var (
	// selfClosingTag matches <name attrs/> as written by svgdoc.
	selfClosingTag = regexp.MustCompile(`<([^\s/>!?]+)([^>]*?)\s*/>`)

	// interTagSpace matches a whitespace-only gap between two tags.
	interTagSpace = regexp.MustCompile(`>\s+<`)

	// nestedOpenTag matches an opening tag at the start of content or right
	// after another tag. Tags that follow text are left alone so that
	// formatting stays idempotent for mixed content.
	nestedOpenTag = regexp.MustCompile(`(^|>)<([^/!?])`)
)

// printer renders a document in canonical form.
type printer struct {
	indent string
	locale language.Tag
	buf    strings.Builder
}

// newPrinter creates a new printer with the given settings.
func newPrinter(indent string, locale language.Tag) *printer {
	return &printer{
		indent: indent,
		locale: locale,
	}
}

// PrintDocument renders <svg {sorted attrs}>{content}</svg> on a single line.
func (p *printer) PrintDocument(doc *svgdoc.Document) string {
	p.buf.Reset()

	root := doc.Root
	attrs := p.sortAttrs(root.Attrs)

	p.write("<")
	p.write(root.Name)
	if len(attrs) > 0 {
		p.write(" ")
		p.write(svgdoc.FormatAttrs(attrs))
	}
	p.write(">")
	p.write(p.content(root))
	p.write("</")
	p.write(root.Name)
	p.write(">")

	return p.buf.String()
}

// sortAttrs returns a copy of attrs ordered by locale-aware collation of the
// names. Names that collate equal fall back to byte order.
func (p *printer) sortAttrs(attrs []svgdoc.Attr) []svgdoc.Attr {
	sorted := make([]svgdoc.Attr, len(attrs))
	copy(sorted, attrs)

	c := collate.New(p.locale)
	sort.SliceStable(sorted, func(i, j int) bool {
		if cmp := c.CompareString(sorted[i].Name, sorted[j].Name); cmp != 0 {
			return cmp < 0
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// content serializes the root's children and applies the text passes:
// explicit close tags, collapsed gaps, then the flat indent.
func (p *printer) content(root *svgdoc.Element) string {
	content := strings.TrimSpace(root.InnerXML(svgdoc.SerializeOptions{}))
	content = expandSelfClosing(content)
	content = collapseGaps(content)
	return indentTags(content, p.indent)
}

// expandSelfClosing rewrites <tag attrs/> as <tag attrs></tag>.
func expandSelfClosing(s string) string {
	return selfClosingTag.ReplaceAllString(s, "<$1$2></$1>")
}

// collapseGaps removes whitespace-only runs between adjacent tags.
func collapseGaps(s string) string {
	return interTagSpace.ReplaceAllString(s, "><")
}

// indentTags prefixes nested opening tags with indent. The indent is flat; it
// does not grow with depth.
func indentTags(s, indent string) string {
	return nestedOpenTag.ReplaceAllStringFunc(s, func(m string) string {
		if m[0] == '>' {
			return ">" + indent + m[1:]
		}
		return indent + m
	})
}

// Helper methods

func (p *printer) write(s string) {
	p.buf.WriteString(s)
}
