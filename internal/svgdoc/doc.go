// Package svgdoc parses SVG source into a small element tree and serializes
// it back to markup.
//
// The tree keeps attribute order and namespace prefixes exactly as written so
// that callers can rewrite attributes per element before serializing:
//   - [Parse]: decodes source text into a [Document] rooted at an svg element
//   - [Element.InnerXML]: serializes an element's children
//   - [Walk]: visits every element of a subtree depth-first
package svgdoc
