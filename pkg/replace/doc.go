// Package replace performs multi-pattern literal replacement in one pass.
//
// Unlike chained strings.ReplaceAll calls, Multi never re-matches text that
// an earlier replacement produced, and overlapping patterns are resolved by
// position first, then by the order replacements were given:
//
//	out, _ := replace.Multi("abc", []replace.Replacement{{Old: "ab", New: "cd"}})
//	// "cdc"
package replace
