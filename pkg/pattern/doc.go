// Package pattern provides composable regular-expression helpers: flag
// merging, literal escaping, accent-insensitive and case-insensitive
// rewriting, whole-string anchoring, and a transform pipeline combining them.
//
// Patterns are compiled with the regexp2 engine so that a compiled pattern
// carries both its source text and a JS-style single-character flag set
// (g, i, m, s, u, y), which transform functions can introspect and recombine.
//
// # Features
//
//   - CombineFlags merges flag strings as a set, preserving first-seen order
//   - Escape turns an arbitrary string into a pattern matching it literally
//   - AccentInsensitive rewrites a pattern so Latin vowels match their
//     accented variants; RemoveAccents folds a literal string the same way
//   - CaseInsensitive and MatchWhole adjust matching mode and anchoring
//   - Transform applies accent folding, case folding, and anchoring in a
//     fixed order based on an Options value
//   - IsValid and IsValidFlags report pattern and flag validity as booleans
//
// # Usage
//
//	import "github.com/dmitrymomot/validx/pkg/pattern"
//
//	p, err := pattern.Transform("cafe", pattern.Options{
//		AccentInsensitive: true,
//		CaseInsensitive:   true,
//		MatchWhole:        true,
//	})
//	if err != nil {
//		// handle invalid source
//	}
//	p.MatchString("Café") // true
//
// Every transform accepts either a raw string or an already compiled
// *Pattern. Compiled inputs are recomposed from their source text, and their
// flag set is merged with the supplied flags via set union. Passing any other
// type returns ErrUnsupportedSource.
//
// # Limitations
//
// Accent-insensitive rewriting is a textual substitution over the pattern
// source. It is reliable for literal sources but can corrupt sources that
// already contain the vowel alternation groups it inserts. Parse the source
// yourself if you need to transform such patterns.
//
// All functions are pure and safe for concurrent use; the accent table and
// base patterns are package-level constants initialized at startup.
package pattern
