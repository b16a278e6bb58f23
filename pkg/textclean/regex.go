package textclean

import "regexp"

var (
	// Shortest span from "<" to the next ">"; "." deliberately excludes
	// newlines, so a tag broken across lines is left alone.
	htmlTagRegex = regexp.MustCompile(`<.*?>`)

	// Emoji-bearing Unicode blocks: emoticons, misc symbols & pictographs,
	// transport & map symbols, regional-indicator flag letters. Skin-tone
	// modifiers and ZWJ sequence glue fall outside these blocks and may
	// leave residue.
	emojiRegex = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}]+`)
)
