package validator

// Rule constructors wrapping the format predicates, for use with Apply when
// validating whole input structs field by field.

// ValidEmail validates that a value is a valid email address.
func ValidEmail(field string, value any) Rule {
	return Rule{
		Check: func() bool { return IsValidEmail(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidURL validates that a value is a valid URL.
func ValidURL(field string, value any) Rule {
	return Rule{
		Check: func() bool { return IsValidURL(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
		},
	}
}

// ValidPhoneNumber validates that a value is a North American phone number.
func ValidPhoneNumber(field string, value any) Rule {
	return Rule{
		Check: func() bool { return IsValidPhoneNumber(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number",
		},
	}
}

// ValidSSN validates that a value is a US social security number.
func ValidSSN(field string, value any) Rule {
	return Rule{
		Check: func() bool { return IsValidSSN(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid social security number",
		},
	}
}

// ValidAlphanumeric validates that a string contains only letters, digits,
// underscores, and hyphens.
func ValidAlphanumeric(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsAlphanumeric(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters, numbers, underscores, and hyphens",
		},
	}
}
