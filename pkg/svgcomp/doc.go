// Package svgcomp turns an SVG document into React component source.
//
// Attributes are rewritten per element before templating:
//   - hyphenated names become camelCase (stroke-width -> strokeWidth)
//   - fill and stroke values other than "none" become currentColor
//   - id is dropped everywhere; width and height are dropped from the root
//     when the [Profile] injects a size prop
//
// The result is emitted as a typed (TSX) or untyped (JSX) component; see
// [Dialect]. [ComponentName] derives a default component name from a file name.
package svgcomp
