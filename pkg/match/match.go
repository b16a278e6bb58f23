package match

import "strings"

// ContainsAny reports whether s contains at least one of the items as a
// literal, case-sensitive substring. It returns false for an empty item list
// and stops at the first hit. An empty-string item matches any s.
func ContainsAny(s string, items []string) bool {
	for _, item := range items {
		if strings.Contains(s, item) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether s contains every item as a literal,
// case-sensitive substring. It returns true for an empty item list (vacuous
// truth) and stops at the first miss.
func ContainsAll(s string, items []string) bool {
	for _, item := range items {
		if !strings.Contains(s, item) {
			return false
		}
	}
	return true
}
