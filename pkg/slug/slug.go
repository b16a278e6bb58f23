package slug

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/textkit/pkg/textclean"
)

// Runs of anything outside lowercase ASCII alphanumerics collapse into a
// single separator. Cleaning has already happened by the time this applies,
// so decomposed accents keep their ASCII base letter and drop the combining
// mark into the separator run.
var nonSlugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Option configures slug generation.
type Option func(*config)

type config struct {
	separator     string
	maxLength     int
	customReplace map[string]string
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		maxLength: 0, // no limit
	}
}

// Separator sets the separator string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// MaxLength truncates the generated slug to at most n runes. The result is
// re-trimmed so it never ends with a separator.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// CustomReplace applies literal string replacements before cleaning.
// For example: {"&": "and", "@": "at"}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// Make creates a URL-safe slug from the input string. The input is run
// through the textclean pipeline (entity decoding, tag and emoji stripping,
// NFKD decomposition, whitespace normalization), lowercased, and every run of
// characters outside [a-z0-9] becomes a single separator. The result never
// starts or ends with a separator; input that reduces to nothing yields "".
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, replacement := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, replacement)
	}

	s = strings.ToLower(textclean.CleanText(s))
	s = nonSlugRegex.ReplaceAllString(s, cfg.separator)

	// Runs are already collapsed, so at most one separator can sit at
	// either end.
	if cfg.separator != "" {
		s = strings.TrimPrefix(s, cfg.separator)
		s = strings.TrimSuffix(s, cfg.separator)
	}

	if cfg.maxLength > 0 {
		runes := []rune(s)
		if len(runes) > cfg.maxLength {
			cut := cfg.maxLength
			if cfg.separator != "" {
				// The cut can land inside a multi-rune separator; back
				// off to the start of a separator straddling it.
				sepLen := len([]rune(cfg.separator))
				for back := 1; back < sepLen; back++ {
					start := cut - back
					if start < 0 || start+sepLen > len(runes) {
						continue
					}
					if string(runes[start:start+sepLen]) == cfg.separator {
						cut = start
						break
					}
				}
			}
			s = string(runes[:cut])
			// Trim whole separators only, so legitimate trailing
			// characters shared with the separator are kept.
			if cfg.separator != "" {
				for strings.HasSuffix(s, cfg.separator) {
					s = strings.TrimSuffix(s, cfg.separator)
				}
			}
		}
	}

	return s
}
