package strcase

import (
	"regexp"
	"strings"
	"unicode"
)

// Case-boundary patterns, applied as two independent global passes so that an
// acronym run ("HTTP") stays one word up to its trailing uppercase+lowercase
// boundary.
var (
	// any character followed by an Upper+lower word start: "XResponse" -> "X_Response"
	acronymBoundaryRegex = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	// lowercase or digit followed by uppercase: "test123C" -> "test123_C"
	lowerUpperBoundaryRegex = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	// single separator characters for camel/pascal tokenization; RE2's \s is
	// ASCII-only, so Unicode whitespace (separators, NBSP, NEL, vertical tab)
	// is listed explicitly
	separatorRegex = regexp.MustCompile(`[_\-\s\p{Z}\x{0B}\x{85}]`)
)

// ToSnakeCase converts camelCase, PascalCase and space-separated words to
// snake_case. Acronym runs are kept together: "HTTPResponse" becomes
// "http_response". Existing hyphens and underscores are preserved as-is.
func ToSnakeCase(s string) string {
	s = acronymBoundaryRegex.ReplaceAllString(s, "${1}_${2}")
	s = lowerUpperBoundaryRegex.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

// ToKebabCase converts a string to kebab-case. It is ToSnakeCase with every
// underscore replaced by a hyphen, so both share identical word boundaries.
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}

// ToCamelCase converts snake_case, kebab-case and space-separated words to
// camelCase: the first word is fully lowercased, subsequent words are
// title-cased and concatenated without separators. Input without separators
// is returned fully lowercased.
func ToCamelCase(s string) string {
	parts := separatorRegex.Split(s, -1)

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(strings.ToLower(parts[0]))
	for _, part := range parts[1:] {
		b.WriteString(titleWord(part))
	}

	return b.String()
}

// ToPascalCase converts a string to PascalCase: every word is title-cased and
// concatenated without separators.
func ToPascalCase(s string) string {
	parts := separatorRegex.Split(s, -1)

	var b strings.Builder
	b.Grow(len(s))
	for _, part := range parts {
		b.WriteString(titleWord(part))
	}

	return b.String()
}

// titleWord uppercases the first alphabetic rune of a word and lowercases
// everything else, so "API" becomes "Api" and "123abc" becomes "123Abc".
func titleWord(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	seenLetter := false
	for _, r := range s {
		if !seenLetter && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			seenLetter = true
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
