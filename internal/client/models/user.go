// Package models holds the data types shared by the sign-in client layers.
package models

import (
	"encoding/json"
	"errors"
)

// ErrMissingToken is returned when an AuthenticatedUser without a token is
// about to be stored or made current.
var ErrMissingToken = errors.New("authenticated user has no token")

// Credentials is the email/password pair of a single submission.
// It is never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticatedUser is a signed-in session. UserDetails is passed through
// exactly as the server sent it.
type AuthenticatedUser struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Token       string          `json:"token"`
	UserDetails json.RawMessage `json:"userDetails,omitempty"`
}

// Validate reports ErrMissingToken when u carries no token.
func (u AuthenticatedUser) Validate() error {
	if u.Token == "" {
		return ErrMissingToken
	}
	return nil
}
