package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// ErrUnsupportedSource is returned when a transform receives something
	// other than a string or a *Pattern.
	ErrUnsupportedSource = errors.New("pattern: source must be a string or *Pattern")

	// ErrInvalidFlags is returned when a flag string contains characters
	// outside the recognized alphabet.
	ErrInvalidFlags = errors.New("pattern: invalid flags")
)

// Pattern pairs a regular expression's source text with its flag set, so
// transforms can introspect and recompose compiled patterns.
type Pattern struct {
	Source string
	Flags  string

	re *regexp2.Regexp
}

// Options configures Transform. Zero value applies no transforms.
type Options struct {
	Flags             string
	AccentInsensitive bool
	CaseInsensitive   bool
	MatchWhole        bool
}

// Compile builds a Pattern from source text and a flag string. It fails on
// malformed source or unrecognized flags.
func Compile(source, flags string) (*Pattern, error) {
	opts, ok := options(flags)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFlags, flags)
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, err
	}

	return &Pattern{Source: source, Flags: flags, re: re}, nil
}

// MustCompile is like Compile but panics on error. Intended for package-level
// pattern variables.
func MustCompile(source, flags string) *Pattern {
	p, err := Compile(source, flags)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether the pattern matches anywhere in s.
func (p *Pattern) MatchString(s string) bool {
	// The engine only errors when a match timeout is configured; none is.
	ok, _ := p.re.MatchString(s)
	return ok
}

// String returns the pattern's source text.
func (p *Pattern) String() string {
	return p.Source
}

// normalize reduces a string-or-*Pattern source to (text, flags). Compiled
// inputs contribute their own flags via set union with the supplied ones.
func normalize(src any, flags string) (string, string, error) {
	switch s := src.(type) {
	case string:
		return s, flags, nil
	case *Pattern:
		return s.Source, CombineFlags(s.Flags, flags), nil
	default:
		return "", "", fmt.Errorf("%w, got %T", ErrUnsupportedSource, src)
	}
}

// metaChars is the fixed set of characters Escape prefixes with a backslash.
const metaChars = `-^$.*+?()|[]{}\`

// Escape compiles a pattern that matches the source text literally, escaping
// every regex metacharacter. A compiled input is re-escaped from its source
// text with merged flags.
func Escape(src any, flags string) (*Pattern, error) {
	source, flags, err := normalize(src, flags)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.Grow(len(source))
	for _, r := range source {
		if strings.ContainsRune(metaChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return Compile(b.String(), flags)
}

// CaseInsensitive compiles the source with the case-insensitive flag added.
func CaseInsensitive(src any, flags string) (*Pattern, error) {
	source, flags, err := normalize(src, flags)
	if err != nil {
		return nil, err
	}
	return Compile(source, CombineFlags(flags, "i"))
}

// MatchWhole compiles the source wrapped in start and end anchors so it only
// matches the entire input. Anchoring is applied unconditionally: an already
// anchored source gets a second pair of anchors (harmless to the engine).
func MatchWhole(src any, flags string) (*Pattern, error) {
	source, flags, err := normalize(src, flags)
	if err != nil {
		return nil, err
	}
	return Compile("^"+source+"$", flags)
}

// Transform applies the enabled transforms in a fixed order — accent
// folding, then case folding, then whole-string anchoring — and compiles the
// result merging in opts.Flags. Accent folding runs first because it rewrites
// the source text itself.
func Transform(src any, opts Options) (*Pattern, error) {
	source, flags, err := normalize(src, opts.Flags)
	if err != nil {
		return nil, err
	}

	if opts.AccentInsensitive {
		source = expandAccents(source)
	}
	if opts.CaseInsensitive {
		flags = CombineFlags(flags, "i")
	}
	if opts.MatchWhole {
		source = "^" + source + "$"
	}

	return Compile(source, flags)
}

// MustTransform is like Transform but panics on error.
func MustTransform(src any, opts Options) *Pattern {
	p, err := Transform(src, opts)
	if err != nil {
		panic(err)
	}
	return p
}

// IsValid reports whether the source compiles under the given flags. It
// never returns an error; this is the one place a compile failure is
// deliberately swallowed.
func IsValid(source, flags string) bool {
	_, err := Compile(source, flags)
	return err == nil
}
