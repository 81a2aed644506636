package preview

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/grindlemire/svgc/internal/svgdoc"
)

const (
	// DefaultColor is the preview color used when none is given.
	DefaultColor = "#000000"
	// DefaultSize is the preview edge length in pixels.
	DefaultSize = 24
	// MinSize and MaxSize bound the preview edge length.
	MinSize = 8
	MaxSize = 512
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa and CSS named colors.
func ValidateColor(color string) error {
	if hexColor.MatchString(color) {
		return nil
	}
	if _, ok := colornames.Map[strings.ToLower(color)]; ok {
		return nil
	}
	return fmt.Errorf("invalid preview color %q (want #rrggbb or a CSS color name)", color)
}

// ValidateSize checks that size is within MinSize..MaxSize.
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("preview size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	return nil
}

// Colorize parses svg and returns markup with the root sized to size pixels
// and every fill and stroke set to color, except values that are exactly
// "none". The error is a *svgdoc.ParseError.
func Colorize(svg, color string, size int) (string, error) {
	doc, err := svgdoc.Parse(svg)
	if err != nil {
		return "", err
	}
	return ColorizeDocument(doc, color, size).String(), nil
}

// ColorizeDocument applies the preview rules to a copy of doc.
func ColorizeDocument(doc *svgdoc.Document, color string, size int) *svgdoc.Document {
	out := doc.Clone()
	root := out.Root

	px := strconv.Itoa(size)
	root.SetAttr("width", px)
	root.SetAttr("height", px)
	root.SetAttr("fill", color)
	root.SetAttr("stroke", color)

	svgdoc.Walk(root, func(el *svgdoc.Element) {
		for _, name := range []string{"fill", "stroke"} {
			if v, ok := el.Attr(name); ok && v == "none" {
				continue
			}
			el.SetAttr(name, color)
		}
	})
	return out
}
