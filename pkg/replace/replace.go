package replace

import (
	"errors"
	"strings"
)

// ErrEmptyReplacements is returned by Multi when no replacements are given.
// An empty set is treated as a caller error rather than a silent no-op so
// that a forgotten table shows up immediately.
var ErrEmptyReplacements = errors.New("empty replacements")

// Replacement is a single literal substitution: occurrences of Old become New.
type Replacement struct {
	Old string
	New string
}

// Multi rewrites s using an ordered set of literal replacements in a single
// left-to-right pass. At each position the first replacement in slice order
// whose Old matches wins; the match is consumed and scanning continues after
// it, so matches never overlap and replaced text is never re-matched:
//
//	replace.Multi("a", []replace.Replacement{{"a", "b"}, {"b", "c"}})
//	// "b" — the produced "b" is not replaced again
//
// Replacements with an empty Old are skipped. An empty replacements slice
// returns ErrEmptyReplacements.
func Multi(s string, replacements []Replacement) (string, error) {
	if len(replacements) == 0 {
		return "", ErrEmptyReplacements
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		matched := false
		for _, r := range replacements {
			if r.Old == "" {
				continue
			}
			if strings.HasPrefix(s[i:], r.Old) {
				b.WriteString(r.New)
				i += len(r.Old)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[i])
			i++
		}
	}

	return b.String(), nil
}
