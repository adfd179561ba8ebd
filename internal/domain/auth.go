package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is returned when an editor login does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RoleEditor is the role carried by tokens allowed to mutate the directory.
const RoleEditor = "editor"

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated subject.
type TokenIssuer interface {
	Issue(subject, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AuthToken is returned by a successful login.
type AuthToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService authenticates directory editors.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthToken, error)
}
