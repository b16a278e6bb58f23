// Package match provides substring containment checks against a list of
// needles: ContainsAny (at least one present) and ContainsAll (every one
// present). Matching is case-sensitive and substring-based, not whole-word.
package match
