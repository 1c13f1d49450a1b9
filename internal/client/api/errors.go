package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned after any 401 response. By the time a caller
// sees it the stored token pair has already been cleared. Match with
// errors.Is.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a business error: a non-2xx response carrying the server-supplied
// detail message. Match with errors.As; anything that is neither an *Error
// nor ErrUnauthorized is a network or parse failure.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}

// DetailMessage extracts the server detail from err when it is a business
// error; otherwise it returns fallback. This is the single place that maps
// the error taxonomy onto operator-facing text.
func DetailMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
