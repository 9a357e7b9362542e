package readwise

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoToken is returned before any request when no API token is set.
	ErrNoToken = errors.New("readwise: no API token configured")
	// ErrNotFound is returned by Get when no document has the id.
	ErrNotFound = errors.New("readwise: document not found")
	// ErrInvalidLocation is returned for a location the API does not know.
	ErrInvalidLocation = errors.New("readwise: invalid location")
)

// APIError is a non-2xx response.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("readwise: %s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unauthorized reports whether the token was rejected.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// IsUnauthorized reports whether err is an APIError for a rejected token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}
