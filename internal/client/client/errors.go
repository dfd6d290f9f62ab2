package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed login response")
)

// RejectionError is a non-success answer from the login endpoint.
type RejectionError struct {
	StatusCode int
	// Message is the server-provided "error" field, empty when absent.
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("login rejected: status %d", e.StatusCode)
	}
	return fmt.Sprintf("login rejected: status %d: %s", e.StatusCode, e.Message)
}
