package svgcomp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultComponentName is used when no name can be derived from a file name.
const DefaultComponentName = "SvgComponent"

var (
	svgSuffix     = regexp.MustCompile(`(?i)\.svg$`)
	nameSeparator = regexp.MustCompile(`[-_\s]`)
)

// ComponentName derives a PascalCase component name from a file name:
//
//	arrow-right_icon.svg -> ArrowRightIcon
//	MY ICON.SVG          -> MyIcon
//	---.svg              -> SvgComponent
func ComponentName(filename string) string {
	return DeriveName(filename, DefaultComponentName)
}

// DeriveName is ComponentName with a caller-supplied fallback. The fallback is
// returned when the derived name contains no letter.
func DeriveName(filename, fallback string) string {
	base := svgSuffix.ReplaceAllString(filename, "")
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var sb strings.Builder
	for _, word := range nameSeparator.Split(base, -1) {
		if word == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(word)
		sb.WriteString(upper.String(word[:size]))
		sb.WriteString(lower.String(word[size:]))
	}

	name := sb.String()
	if !strings.ContainsFunc(name, unicode.IsLetter) {
		return fallback
	}
	return name
}

// IsIdentifier reports whether name can be used as a JavaScript identifier.
// Generated source does not check this; callers decide what to do with
// names that fail.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)):
		default:
			return false
		}
	}
	return true
}
