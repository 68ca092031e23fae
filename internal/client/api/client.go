// Package api is the client-side gateway to the auth server's HTTP/JSON
// endpoints.
package api

import "context"

// User is the public view of an account returned by signup.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client defines the remote operations the CLI needs.
//
// Contract:
//   - SignUp: create an account; duplicate email yields common.ErrorAlreadyExists,
//     rejected input yields *common.ValidationError with the server's message.
//   - Login: verify credentials and return a session token; bad credentials
//     yield common.ErrorUnauthorized.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	SignUp(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
