package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserView is the identity derived from the held token. It is recomputed on
// every read and never stored.
type UserView struct {
	UserID    string
	ExpiresAt time.Time
}

type viewClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// CurrentUser derives the authenticated user from the current token.
//
// The client holds no signing secret, so the payload is decoded without
// signature verification; the token is signed for the server's benefit, not
// encrypted. A missing token yields (nil, nil). A token that does not parse
// or has expired triggers an implicit Logout and also yields (nil, nil):
// a stale session heals itself into the anonymous state rather than
// surfacing an error.
func (s *Store) CurrentUser(ctx context.Context) (*UserView, error) {
	token := s.Token()
	if token == "" {
		return nil, nil
	}

	claims := &viewClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		if err := s.Logout(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	exp := claims.ExpiresAt
	if exp == nil || !exp.After(time.Now()) {
		if err := s.Logout(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &UserView{UserID: claims.UserID, ExpiresAt: exp.Time}, nil
}
