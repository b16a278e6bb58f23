// Package textkit is a collection of small, stateless string-transformation
// packages: case-style conversion, text cleaning, slug generation, substring
// matching, fuzzy similarity scoring, multi-pattern replacement and PII
// masking.
//
// Each concern lives in its own package under pkg/ and can be imported
// independently:
//
//   - pkg/strcase — snake_case, camelCase, PascalCase and kebab-case conversion
//   - pkg/textclean — HTML/emoji stripping, whitespace and Unicode normalization
//   - pkg/slug — URL-safe slug generation on top of the cleaning pipeline
//   - pkg/match — substring containment checks (any/all)
//   - pkg/fuzzy — similarity ratio between two strings
//   - pkg/mask — masking of emails, phone numbers and other sensitive values
//   - pkg/replace — ordered multi-pattern literal replacement
//
// Every function is a pure transformation over its arguments: no shared state,
// no I/O, no goroutines. All packages are safe for concurrent use.
package textkit
