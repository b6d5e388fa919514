// Package api implements the HTTP client for the Todo service
// authentication endpoints.
package api

import "context"

// LoginResult carries the fields the login endpoint returns on success.
// Token may be empty; callers decide whether that is acceptable.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Client defines the remote operations the authentication flows need.
type Client interface {
	// Register creates a new account.
	Register(ctx context.Context, username, email, password string) error

	// Login exchanges credentials for a session token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
