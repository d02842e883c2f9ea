package response

import "net/http"

// HTTPError is an error with the status and message a client should see.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrNotFound       = NewHTTPError(http.StatusNotFound, "Not found")
	ErrInternalServer = NewHTTPError(http.StatusInternalServerError, DefaultErrorMessage)
)
