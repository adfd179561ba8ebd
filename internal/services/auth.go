package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/domain"
)

const editorSubject = "editor"

type authService struct {
	hasher      domain.PasswordHasher
	issuer      domain.TokenIssuer
	editorEmail string
	editorHash  string
	tokenExpiry time.Duration
	clock       func() time.Time
}

// NewAuthService returns an AuthService for the single configured editor
// account. An empty editorEmail or editorHash rejects every login.
func NewAuthService(hasher domain.PasswordHasher, issuer domain.TokenIssuer, editorEmail, editorHash string, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		hasher:      hasher,
		issuer:      issuer,
		editorEmail: normalizeEmail(editorEmail),
		editorHash:  editorHash,
		tokenExpiry: tokenExpiry,
		clock:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	if s.editorEmail == "" || s.editorHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if normalizeEmail(email) != s.editorEmail {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(s.editorHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	issuedAt := s.clock()
	token, err := s.issuer.Issue(editorSubject, s.editorEmail, []string{domain.RoleEditor}, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.AuthToken{Token: token, ExpiresAt: issuedAt.Add(s.tokenExpiry).UTC()}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
