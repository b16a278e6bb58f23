// Package textclean normalises messy text: it strips HTML tags and emoji,
// decodes HTML entities, applies Unicode compatibility decomposition and
// collapses whitespace.
//
// The individual steps are exported so they can be used on their own, and
// CleanText chains them in a fixed order:
//
//	textclean.CleanText("  <p>Café &amp; Bar 😀</p>  ")
//	// "Café & Bar" (with the accent decomposed to base letter + mark)
//
// Custom pipelines can be assembled with the generic Apply and Compose
// helpers:
//
//	clean := textclean.Compose(
//		textclean.RemoveHTML,
//		textclean.NormalizeSpaces,
//	)
//	safe := clean("<b> hello   world </b>") // "hello world"
//
// All functions are total: any Unicode string in, a string out, no errors.
package textclean
