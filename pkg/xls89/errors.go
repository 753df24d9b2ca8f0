package xls89

// FormatError reports metadata input that failed to parse or does not
// satisfy the XLS-89 shape requirements.
type FormatError struct {
	Message string
}

func (errorValue *FormatError) Error() string {
	return errorValue.Message
}
