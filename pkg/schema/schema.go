package schema

import "strings"

// Kind tags the origin of a violation. Nested kinds carry inner violations
// from validating a function's arguments or return value.
type Kind string

const (
	// KindConstraint is a flat constraint violation. Zero value.
	KindConstraint Kind = ""

	// KindInvalidArguments wraps violations found in a function's arguments.
	KindInvalidArguments Kind = "invalid_arguments"

	// KindInvalidReturnType wraps violations found in a function's return value.
	KindInvalidReturnType Kind = "invalid_return_type"
)

// Violation is one structured failure from a validation attempt.
type Violation struct {
	// Path locates the violation within a structured input, one segment per
	// level. Empty for top-level violations.
	Path []string

	// Message is the human-readable detail.
	Message string

	// Kind tags the violation; nested kinds recurse into Inner.
	Kind Kind

	// Inner holds the nested violations for KindInvalidArguments and
	// KindInvalidReturnType. Ignored for flat kinds.
	Inner []Violation
}

// Result is the tagged outcome of a SafeParse call.
type Result struct {
	// OK reports success. When true, Violations is empty.
	OK bool

	// Value is the parsed value on success.
	Value any

	// Violations lists the failures in the order reported by the engine.
	Violations []Violation
}

// Parser is the safe-parse contract: validation failure is expressed in the
// Result, never as an error or panic.
type Parser interface {
	SafeParse(v any) Result
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(v any) Result

func (f ParserFunc) SafeParse(v any) Result { return f(v) }

// Validate reduces a parser to a boolean predicate, suppressing all detail.
func Validate(p Parser, v any) bool {
	return p.SafeParse(v).OK
}

// Explain reduces a parser to a detail-returning predicate. On failure it
// returns one formatted message per violation, in engine order; on success
// the slice is nil.
func Explain(p Parser, v any, opts ...Option) (bool, []string) {
	res := p.SafeParse(v)
	if res.OK {
		return true, nil
	}
	return false, Messages(res.Violations, opts...)
}

// Parse converts validation failure into an error. On failure it returns a
// *Error carrying the individual formatted messages; on success it returns
// nil.
func Parse(p Parser, v any, opts ...Option) error {
	res := p.SafeParse(v)
	if res.OK {
		return nil
	}

	cfg := newFormatConfig(opts...)
	return &Error{
		Messages:  formatAll(res.Violations, cfg),
		separator: cfg.messageSeparator,
	}
}

// Error is the error form of a validation failure. Messages holds the
// structured per-violation messages for programmatic inspection; Error joins
// them with the configured message separator.
type Error struct {
	Messages []string

	separator string
}

func (e *Error) Error() string {
	sep := e.separator
	if sep == "" {
		sep = "\n"
	}
	return strings.Join(e.Messages, sep)
}
