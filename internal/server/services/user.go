// Package services contains server-side business logic. This file implements
// UserService, which handles signup validation and credential verification,
// and issues session JWTs.
package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrashin/tokengate/internal/common"
	"github.com/mpetrashin/tokengate/internal/server/auth"
	"github.com/mpetrashin/tokengate/internal/server/config"
	"github.com/mpetrashin/tokengate/internal/server/models"
	"github.com/mpetrashin/tokengate/internal/server/repositories/users"
)

// Stable user-facing validation messages. These strings are part of the API
// contract and must not be reworded.
const (
	MsgFieldsRequired   = "Email and password are required"
	MsgInvalidEmail     = "Invalid email format"
	MsgPasswordTooShort = "Password must be at least 8 characters long"
)

const minPasswordLength = 8

// emailPattern accepts local@domain.tld shapes: no whitespace, exactly one
// "@", and a "." somewhere in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService provides the signup and login operations:
//   - SignUp: validate input, hash the password, create the user.
//   - Login: verify credentials and mint a session token.
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	bcryptCost            int
}

// NewUserService constructs a UserService using the users repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		bcryptCost:            cfg.BcryptCost,
	}
}

// SignUp validates the credentials, hashes the password, and stores a new
// user. Validation failures return *common.ValidationError and never touch
// the store. A duplicate email returns common.ErrorAlreadyExists; the unique
// index decides the winner when two signups race on the same address.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, common.NewValidationError(MsgFieldsRequired)
	}
	if !emailPattern.MatchString(email) {
		return nil, common.NewValidationError(MsgInvalidEmail)
	}
	if len(password) < minPasswordLength {
		return nil, common.NewValidationError(MsgPasswordTooShort)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash}
	u, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown email and wrong password collapse into the same
// common.ErrorUnauthorized; the miss path still pays one bcrypt comparison
// so the two are not separable by timing either. Password length is not
// re-checked here: length is a signup admission rule, and enforcing it at
// login would lock out accounts predating a policy change.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.NewValidationError(MsgFieldsRequired)
	}
	if !emailPattern.MatchString(email) {
		return "", common.NewValidationError(MsgInvalidEmail)
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.DummyCompare(password)
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}
