package svgcomp

import (
	"fmt"
	"strings"
)

// Dialect selects the flavor of generated component source.
type Dialect int

const (
	// DialectTyped emits TypeScript (TSX) with a props interface.
	DialectTyped Dialect = iota
	// DialectUntyped emits plain JSX without type annotations.
	DialectUntyped
)

// String returns the canonical dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectTyped:
		return "typed"
	case DialectUntyped:
		return "untyped"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// Ext returns the file extension for sources in this dialect.
func (d Dialect) Ext() string {
	if d == DialectUntyped {
		return ".jsx"
	}
	return ".tsx"
}

// ParseDialect accepts "typed"/"tsx"/"ts" and "untyped"/"jsx"/"js", case-insensitively.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "typed", "tsx", "ts":
		return DialectTyped, nil
	case "untyped", "jsx", "js":
		return DialectUntyped, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (want typed or untyped)", s)
	}
}
