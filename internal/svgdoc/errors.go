package svgdoc

import (
	"fmt"
	"strings"
)

// Position is a location in SVG source.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// ParseError reports source text that is not a usable SVG document.
// It is the only error kind produced by the svgc transforms.
type ParseError struct {
	Pos     Position
	Message string
	Hint    string // optional suggestion for fixing the input
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Pos.String())
	sb.WriteString(": error: ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

func newErrorf(pos Position, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func newErrorWithHint(pos Position, message, hint string) *ParseError {
	return &ParseError{Pos: pos, Message: message, Hint: hint}
}
