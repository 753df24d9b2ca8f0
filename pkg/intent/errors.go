package intent

// ValidationError reports a required field that was missing or a field
// whose value is structurally invalid. Field names the first offending
// field in the fixed order the builder checks them.
type ValidationError struct {
	Field   string
	Message string
}

func (errorValue *ValidationError) Error() string {
	return errorValue.Message
}

func errRequired(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func errInvalid(field string, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
