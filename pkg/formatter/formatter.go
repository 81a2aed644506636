// Package formatter normalizes SVG source for display.
//
// The root element's attributes are sorted by name, whitespace between tags
// is removed, empty elements are written as explicit open/close pairs, and
// nested opening tags get a flat two-space indent. Used by the "svgc fmt"
// command and as the first step of "svgc generate".
package formatter

import (
	"golang.org/x/text/language"

	"github.com/grindlemire/svgc/internal/svgdoc"
)

// Formatter formats SVG source code.
type Formatter struct {
	// IndentString prefixes each nested opening tag (default: two spaces).
	IndentString string
	// Locale selects the collation used to sort root attributes (default: und).
	Locale language.Tag
}

// New creates a new Formatter with default settings.
func New() *Formatter {
	return &Formatter{
		IndentString: "  ",
		Locale:       language.Und,
	}
}

// Format is shorthand for New().Format("", source).
func Format(source string) (string, error) {
	return New().Format("", source)
}

// Format parses and reformats the given SVG source. filename is used only in
// error positions. Returns a *svgdoc.ParseError when the source is not an
// SVG document.
func (f *Formatter) Format(filename, source string) (string, error) {
	doc, err := svgdoc.NewParser(filename, source).Parse()
	if err != nil {
		return "", err
	}
	return f.FormatDocument(doc), nil
}

// FormatDocument formats an already parsed document. doc is not modified.
func (f *Formatter) FormatDocument(doc *svgdoc.Document) string {
	p := newPrinter(f.IndentString, f.Locale)
	return p.PrintDocument(doc)
}

// FormatResult contains the result of formatting a file.
type FormatResult struct {
	// Content is the formatted content.
	Content string
	// Changed indicates if the content was different from the original.
	Changed bool
}

// FormatWithResult formats the source and indicates if it changed.
func (f *Formatter) FormatWithResult(filename, source string) (FormatResult, error) {
	formatted, err := f.Format(filename, source)
	if err != nil {
		return FormatResult{}, err
	}

	return FormatResult{
		Content: formatted,
		Changed: formatted != source,
	}, nil
}
