package pattern

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// validFlags is the recognized flag alphabet: global, case-insensitive,
// multiline, dot-all, unicode, sticky.
const validFlags = "gimsuy"

// flagOptions maps mode flags to engine options. The g and y flags carry no
// compile-time meaning here: match-all iteration and stickiness are caller
// concerns, so they are accepted but ignored by the compiler.
var flagOptions = map[rune]regexp2.RegexOptions{
	'i': regexp2.IgnoreCase,
	'm': regexp2.Multiline,
	's': regexp2.Singleline,
	'u': regexp2.Unicode,
}

// CombineFlags merges any number of flag strings into a single set,
// preserving the first-seen order of each character. Empty inputs are
// ignored and duplicates collapse.
func CombineFlags(flagSets ...string) string {
	var b strings.Builder
	seen := make(map[rune]bool, len(validFlags))

	for _, flags := range flagSets {
		for _, f := range flags {
			if !seen[f] {
				b.WriteRune(f)
				seen[f] = true
			}
		}
	}

	return b.String()
}

// IsValidFlags reports whether every character of flags belongs to the
// recognized flag alphabet.
func IsValidFlags(flags string) bool {
	for _, f := range flags {
		if !strings.ContainsRune(validFlags, f) {
			return false
		}
	}
	return true
}

// options converts a flag string into engine options. Unknown flags are
// reported so Compile can reject them.
func options(flags string) (regexp2.RegexOptions, bool) {
	opts := regexp2.None
	for _, f := range flags {
		if !strings.ContainsRune(validFlags, f) {
			return opts, false
		}
		opts |= flagOptions[f]
	}
	return opts, true
}
