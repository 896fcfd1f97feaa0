// Package validator provides format predicates for common user input
// (emails, URLs, phone numbers, SSNs, alphanumeric identifiers) and a small
// rule layer for aggregating field-level failures.
//
// Predicates are plain boolean functions that never return errors: a value
// either satisfies the format or it does not. Detail-returning validation is
// the schema package's concern. Email and URL checks delegate to the schema
// engine's format rules; phone and SSN checks coerce their input to a string
// and match precompiled patterns built with the pattern package.
//
// # Usage
//
//	import "github.com/dmitrymomot/validx/pkg/validator"
//
//	validator.IsValidEmail("user@example.com") // true
//	validator.IsValidSSN("123-45-6789")        // true
//	validator.ToAlphanumeric("Héllo, World!")  // "Hello-World"
//
// For struct validation, wrap predicates into rules and evaluate them with
// Apply, which aggregates failures into a ValidationErrors value satisfying
// the error interface:
//
//	err := validator.Apply(
//		validator.ValidEmail("email", email),
//		validator.ValidPhoneNumber("phone", phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// inspect per-field messages
//	}
//
// The package is stateless and safe for concurrent use; all patterns and
// schema parsers are compiled once at startup.
package validator
