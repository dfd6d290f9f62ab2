package models

import "encoding/json"

// LoginUser is the "user" object of a successful login response.
type LoginUser struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"required"`
	UserDetails json.RawMessage `json:"userDetails"`
}

// LoginResponse is the body of a successful login response.
type LoginResponse struct {
	Token string    `json:"token" validate:"required"`
	User  LoginUser `json:"user"`
}

// ErrorResponse is the optional body of a rejected login.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthenticatedUser combines the response's user and token.
func (r LoginResponse) AuthenticatedUser() AuthenticatedUser {
	return AuthenticatedUser{
		ID:          r.User.ID,
		Name:        r.User.Name,
		Email:       r.User.Email,
		Token:       r.Token,
		UserDetails: r.User.UserDetails,
	}
}
