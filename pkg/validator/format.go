package validator

import (
	"fmt"

	"github.com/dmitrymomot/validx/pkg/pattern"
	"github.com/dmitrymomot/validx/pkg/schema"
)

// The predicates anchor with \z and match digits as [0-9]: under the
// engine's .NET semantics $ also matches before a trailing newline and \d
// matches any Unicode decimal digit, neither of which these formats allow.
var (
	// One-or-more word characters or hyphens spanning the whole string.
	alphanumericPattern = pattern.MustCompile(`^[a-zA-Z0-9_-]+\z`, "")

	// Optional leading +, optional single digit, 3-digit area code
	// (optionally parenthesized), then 3 and 4 digit groups with optional
	// space or hyphen separators.
	phonePattern = pattern.MustCompile(`^\+?[0-9]?[\s-]?(\([0-9]{3}\)|[0-9]{3})[\s-]?[0-9]{3}[\s-]?[0-9]{4}\z`, "")

	// 3-2-4 digit groups with optional hyphens.
	ssnPattern = pattern.MustCompile(`^[0-9]{3}-?[0-9]{2}-?[0-9]{4}\z`, "")
)

var (
	emailParser = schema.MustCompileString("validx://email.json", `{"type":"string","format":"email"}`)
	urlParser   = schema.MustCompileString("validx://url.json", `{"type":"string","format":"uri"}`)
)

// coerce renders any value as a string the way fmt would.
func coerce(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// IsAlphanumeric reports whether the entire string consists of one or more
// letters, digits, underscores, or hyphens. Empty strings are not
// alphanumeric.
func IsAlphanumeric(s string) bool {
	return alphanumericPattern.MatchString(s)
}

// IsValidEmail reports whether v is a valid email address, delegating to the
// schema engine's email format rule.
func IsValidEmail(v any) bool {
	return schema.Validate(emailParser, v)
}

// IsValidURL reports whether v is a valid URL, delegating to the schema
// engine's URI format rule.
func IsValidURL(v any) bool {
	return schema.Validate(urlParser, v)
}

// IsValidPhoneNumber reports whether v renders as a North American phone
// number such as "(555) 123-4567", "555-123-4567", or "+1 555 123 4567".
func IsValidPhoneNumber(v any) bool {
	return phonePattern.MatchString(coerce(v))
}

// IsValidSSN reports whether v renders as a US social security number, with
// or without hyphens.
func IsValidSSN(v any) bool {
	return ssnPattern.MatchString(coerce(v))
}
