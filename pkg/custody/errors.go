package custody

import "fmt"

// APIError reports a non-2xx response from the custody backend. Message
// carries the response body so backend rejections surface verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (errorValue *APIError) Error() string {
	return fmt.Sprintf(
		"custody API request failed with status %d: %s",
		errorValue.StatusCode,
		errorValue.Message,
	)
}
