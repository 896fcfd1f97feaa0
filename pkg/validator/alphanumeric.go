package validator

import (
	"strings"

	"github.com/dmitrymomot/validx/pkg/pattern"
)

// DefaultSeparator joins the segments produced by ToAlphanumeric.
const DefaultSeparator = "-"

// ToAlphanumeric reduces a string to alphanumeric segments joined by the
// default separator: accents are folded to their plain vowels, the string is
// split on runs of non-alphanumeric characters, and empty segments are
// dropped.
//
//	ToAlphanumeric("Héllo, World!") // "Hello-World"
func ToAlphanumeric(s string) string {
	return ToAlphanumericWith(s, DefaultSeparator)
}

// ToAlphanumericWith is ToAlphanumeric with a custom separator.
func ToAlphanumericWith(s, separator string) string {
	s = pattern.RemoveAccents(s)

	segments := strings.FieldsFunc(s, func(r rune) bool {
		return !isAlnum(r)
	})

	kept := segments[:0]
	for _, seg := range segments {
		seg = stripNonAlnum(seg)
		if seg != "" {
			kept = append(kept, seg)
		}
	}

	return strings.Join(kept, separator)
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// stripNonAlnum removes residual non-alphanumeric runes from a segment.
// FieldsFunc already splits on them, so this only matters if the split
// predicate and the keep predicate ever diverge; kept for parity with the
// split-then-strip contract.
func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isAlnum(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
