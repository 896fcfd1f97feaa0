package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// CompileString compiles a JSON Schema document into a Parser. Format
// assertions (email, uri, etc.) are enabled. The name is the resource URL
// the document is registered under; any unique identifier works.
func CompileString(name, doc string) (Parser, error) {
	c := jsonschema.NewCompiler()
	c.AssertFormat = true

	if err := c.AddResource(name, strings.NewReader(doc)); err != nil {
		return nil, err
	}

	s, err := c.Compile(name)
	if err != nil {
		return nil, err
	}

	return FromJSONSchema(s), nil
}

// MustCompileString is like CompileString but panics on error. Intended for
// package-level parser variables.
func MustCompileString(name, doc string) Parser {
	p, err := CompileString(name, doc)
	if err != nil {
		panic(err)
	}
	return p
}

// FromJSONSchema wraps a compiled JSON Schema into the safe-parse contract,
// flattening its cause tree into ordered leaf Violations.
func FromJSONSchema(s *jsonschema.Schema) Parser {
	return ParserFunc(func(v any) (res Result) {
		// The engine panics on values that are not JSON types; the
		// safe-parse contract requires a tagged result instead.
		defer func() {
			if r := recover(); r != nil {
				res = Result{Violations: []Violation{{Message: fmt.Sprint(r)}}}
			}
		}()

		err := s.Validate(v)
		if err == nil {
			return Result{OK: true, Value: v}
		}

		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return Result{Violations: flattenJSONSchema(ve)}
		}

		// Non-validation failures surface as a single pathless violation.
		return Result{Violations: []Violation{{Message: err.Error()}}}
	})
}

// flattenJSONSchema collects the leaf causes of a validation error tree in
// reported order. Interior nodes only restate which subschemas failed, so
// the leaves carry all the useful detail.
func flattenJSONSchema(ve *jsonschema.ValidationError) []Violation {
	if len(ve.Causes) == 0 {
		return []Violation{{
			Path:    pointerSegments(ve.InstanceLocation),
			Message: ve.Message,
		}}
	}

	var out []Violation
	for _, cause := range ve.Causes {
		out = append(out, flattenJSONSchema(cause)...)
	}
	return out
}

// pointerSegments splits a JSON pointer instance location into path
// segments, unescaping per RFC 6901.
func pointerSegments(ptr string) []string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return nil
	}

	segments := strings.Split(ptr, "/")
	for i, s := range segments {
		s = strings.ReplaceAll(s, "~1", "/")
		segments[i] = strings.ReplaceAll(s, "~0", "~")
	}
	return segments
}
