package pattern

import (
	"unicode"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentGroup pairs a vowel alternation with its plain canonical letter. The
// alternation doubles as both the match pattern (any character in the group)
// and the replacement text inserted by AccentInsensitive; its first
// alternative is always the plain letter used by RemoveAccents.
type accentGroup struct {
	alternation string
	plain       string
	re          *regexp2.Regexp
}

func newAccentGroup(alternation, plain string) accentGroup {
	return accentGroup{
		alternation: alternation,
		plain:       plain,
		re:          regexp2.MustCompile(alternation, regexp2.None),
	}
}

// accentGroups covers the five Latin vowels in both cases. Ordered, immutable
// after init.
var accentGroups = []accentGroup{
	newAccentGroup(`(a|à|á|â|ã|ä|å)`, "a"),
	newAccentGroup(`(e|è|é|ê|ë)`, "e"),
	newAccentGroup(`(i|ì|í|î|ï)`, "i"),
	newAccentGroup(`(o|ò|ó|ô|õ|ö)`, "o"),
	newAccentGroup(`(u|ù|ú|û|ü)`, "u"),
	newAccentGroup(`(A|À|Á|Â|Ã|Ä|Å)`, "A"),
	newAccentGroup(`(E|È|É|Ê|Ë)`, "E"),
	newAccentGroup(`(I|Ì|Í|Î|Ï)`, "I"),
	newAccentGroup(`(O|Ò|Ó|Ô|Õ|Ö)`, "O"),
	newAccentGroup(`(U|Ù|Ú|Û|Ü)`, "U"),
}

// expandAccents replaces every occurrence of an accentable letter (or one of
// its variants) with the group's full alternation, so the resulting pattern
// matches any variant. Textual substitution over the source; see the package
// doc for limitations with sources that already contain these alternations.
func expandAccents(source string) string {
	for _, g := range accentGroups {
		// Replace never fails for a valid precompiled pattern.
		source, _ = g.re.Replace(source, g.alternation, -1, -1)
	}
	return source
}

// AccentInsensitive compiles the source rewritten so every accentable Latin
// vowel matches all of its accented variants. Compiled inputs are rewritten
// from their source text with merged flags.
func AccentInsensitive(src any, flags string) (*Pattern, error) {
	source, flags, err := normalize(src, flags)
	if err != nil {
		return nil, err
	}
	return Compile(expandAccents(source), flags)
}

// RemoveAccents replaces every accented vowel in a literal string with its
// plain form. Only the fixed five-vowel table is covered; see Fold for wider
// diacritic folding.
func RemoveAccents(text string) string {
	for _, g := range accentGroups {
		text, _ = g.re.Replace(text, g.plain, -1, -1)
	}
	return text
}

// foldTransformer decomposes, strips combining marks, and recomposes.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold strips diacritics from text using Unicode decomposition. Unlike
// RemoveAccents it is not limited to the vowel table, so it also folds
// characters like ñ and ç.
func Fold(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		return text
	}
	return folded
}
