package socialapi

import (
	"fmt"
	"net/http"
)

// User-facing messages for the statuses the UI calls out specially.
const (
	msgNotFound    = "We couldn't find what you were looking for."
	msgServerError = "Something went wrong on our end. Please try again."
)

// APIError is a non-2xx response from the SocialUp API. Message is already
// user-presentable: status-specific messages win over the response body's
// message field, which wins over the raw status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("socialup api: %d: %s", e.StatusCode, e.Message)
}

// IsAuthRequired reports whether the request was rejected for lacking
// authentication. Surfaces that allow anonymous browsing treat this as an
// empty result rather than an error.
func (e *APIError) IsAuthRequired() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func newAPIError(statusCode int, bodyMessage string) *APIError {
	var msg string
	switch {
	case statusCode == http.StatusNotFound:
		msg = msgNotFound
	case statusCode == http.StatusInternalServerError:
		msg = msgServerError
	case bodyMessage != "":
		msg = bodyMessage
	default:
		msg = http.StatusText(statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
