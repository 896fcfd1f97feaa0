// Package schema adapts any safe-parse-capable validation engine into
// uniform boolean, detail-returning, and error-returning predicates, with
// structured-violation flattening into human-readable path-qualified
// messages.
//
// The central contract is the Parser interface: a single SafeParse call that
// never fails for validation reasons and instead returns a tagged Result of
// either success (with the parsed value) or an ordered list of Violations.
// A JSON Schema backed implementation is provided via CompileString and
// FromJSONSchema.
//
// # Usage
//
//	import "github.com/dmitrymomot/validx/pkg/schema"
//
//	email, err := schema.CompileString("email.json", `{"type":"string","format":"email"}`)
//	if err != nil {
//		// malformed schema document
//	}
//
//	schema.Validate(email, "user@example.com") // true
//
//	ok, msgs := schema.Explain(email, 42)
//	// ok == false, msgs == ["got number, want string"]
//
//	if err := schema.Parse(email, 42); err != nil {
//		// err is a *schema.Error; err.Messages holds the individual
//		// formatted violations, Error() joins them.
//	}
//
// # Message formatting
//
// Each violation formats as "path: detail" with the path segments dot-joined,
// or as the bare detail when the path is empty. The separator, an optional
// path prefix, and the joiner used by Error() are configurable through
// functional options (PathSeparator, PathPrefix, MessageSeparator).
//
// Violations of kind KindInvalidArguments or KindInvalidReturnType carry
// nested inner violations from validating a function's arguments or return
// value; their messages extend the path with an "arguments" or "returnType"
// marker followed by the inner violation's own path, and use the inner
// detail text.
package schema
