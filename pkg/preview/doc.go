// Package preview prepares an SVG document for on-screen display at a chosen
// color and size.
//
// [Colorize] works on a copy of the document and never affects generated
// component source. [Rasterize] renders the colorized result to PNG.
package preview
