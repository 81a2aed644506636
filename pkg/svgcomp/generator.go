package svgcomp

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/grindlemire/svgc/internal/svgdoc"
)

// Generator emits React component source from SVG markup. A Generator holds
// no per-call state and may be reused.
type Generator struct {
	Profile Profile
}

// NewGenerator creates a generator using DefaultProfile.
func NewGenerator() *Generator {
	return &Generator{Profile: DefaultProfile}
}

// Generate is shorthand for NewGenerator().Generate.
func Generate(svg, name string, dialect Dialect) (string, error) {
	return NewGenerator().Generate(svg, name, dialect)
}

// Generate parses svg and returns component source named name in the given
// dialect. The only error is a *svgdoc.ParseError for unparseable input.
//
// name is inserted verbatim; see IsIdentifier for checking it beforehand.
func (g *Generator) Generate(svg, name string, dialect Dialect) (string, error) {
	doc, err := svgdoc.Parse(svg)
	if err != nil {
		return "", err
	}
	return g.GenerateDocument(doc, name, dialect), nil
}

// GenerateDocument templates an already parsed document. doc is not modified.
func (g *Generator) GenerateDocument(doc *svgdoc.Document, name string, dialect Dialect) string {
	root := doc.Root.Clone()
	attrs := svgdoc.FormatAttrs(rewriteRootAttrs(root, g.Profile))
	rewriteDescendants(root)
	content := root.InnerXML(svgdoc.SerializeOptions{ExpandEmpty: true})

	e := &emitter{}
	g.emit(e, name, attrs, content, dialect)
	return postProcess(e.buf.String())
}

func (g *Generator) emit(e *emitter, name, attrs, content string, dialect Dialect) {
	typed := dialect == DialectTyped
	sized := g.Profile.SizeProp

	e.writeln("import React from 'react';")
	e.writeln("")

	if typed {
		e.writef("interface %sProps extends React.SVGProps<SVGSVGElement> {\n", name)
		e.writeln("  title?: string;")
		if sized {
			e.writeln("  size?: number;")
		}
		e.writeln("}")
		e.writeln("")
	}

	params := "{ title, ...props }"
	if sized {
		params = fmt.Sprintf("{ title, size = %d, ...props }", g.Profile.DefaultSize)
	}
	if typed {
		e.writef("export const %s = (%s: %sProps) => (\n", name, params, name)
	} else {
		e.writef("export const %s = (%s) => (\n", name, params)
	}

	e.writeln("  <svg")
	if sized {
		e.writeln("    width={size}")
		e.writeln("    height={size}")
	}
	e.writef("    %s\n", attrs)
	e.writeln("    {...props}")
	e.writeln("  >")
	e.writeln("    {title && <title>{title}</title>}")
	e.writef("    %s\n", content)
	e.writeln("  </svg>")
	e.writeln(");")
	e.writeln("")
	e.writef("%s.displayName = '%s';\n", name, name)
	e.writeln("")
	e.writef("export default %s;\n", name)
}

// blankRuns matches a newline followed by any whitespace-only lines.
var blankRuns = regexp.MustCompile(`\n\s*\n`)

// postProcess collapses runs of blank lines to a single newline and trims
// the result.
func postProcess(src string) string {
	return strings.TrimSpace(blankRuns.ReplaceAllString(src, "\n"))
}

type emitter struct {
	buf bytes.Buffer
}

func (e *emitter) writeln(s string) {
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

func (e *emitter) writef(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}
