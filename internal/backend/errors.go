package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated is the only signal that the operator must log in again.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
)

// APIError is a non-2xx platform answer. Message is the platform's own
// message when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

func unauthenticated(cause error) error {
	return fmt.Errorf("%w: %v", ErrUnauthenticated, cause)
}

// errorMessage picks the platform's message/error/detail field verbatim.
func errorMessage(body any, status int) string {
	if m, ok := body.(map[string]any); ok {
		for _, k := range []string{"message", "error", "detail"} {
			if s, ok := m[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("backend request failed with status %d", status)
}
