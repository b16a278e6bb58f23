package textclean

import (
	"html"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RemoveHTML deletes every <...> tag span from the string, keeping the text
// between tags. It does not parse HTML structure and leaves entities such as
// &nbsp; untouched; use CleanText for the full pipeline.
func RemoveHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// RemoveEmoji deletes code points in a fixed set of emoji Unicode blocks.
// Multi-code-point sequences (skin tones, ZWJ combinations) are only removed
// as far as their components fall inside those blocks.
func RemoveEmoji(s string) string {
	return emojiRegex.ReplaceAllString(s, "")
}

// NormalizeSpaces collapses every run of Unicode whitespace into a single
// ASCII space and trims leading and trailing whitespace.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeUnicode applies NFKD compatibility decomposition: accented letters
// split into base letter plus combining marks, ligatures expand into their
// constituent letters, compatibility forms (superscripts, full-width digits)
// map to their plain equivalents.
func NormalizeUnicode(s string) string {
	return norm.NFKD.String(s)
}

// cleanPipeline is the fixed CleanText stage order. Entities are decoded
// before tag stripping so that escaped markup ("&lt;b&gt;") is removed as
// markup, and whitespace normalization runs last to absorb gaps left by the
// earlier stages.
var cleanPipeline = Compose(
	html.UnescapeString,
	RemoveHTML,
	RemoveEmoji,
	NormalizeUnicode,
	NormalizeSpaces,
)

// CleanText runs the full cleaning pipeline: decode HTML entities, strip
// tags, strip emoji, apply NFKD decomposition, normalize whitespace.
func CleanText(s string) string {
	return cleanPipeline(s)
}
