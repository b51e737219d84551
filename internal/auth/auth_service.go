package auth

import (
	"crypto/subtle"
	"strings"

	autherrors "github.com/archit-sahay/Aibo-Meikan/internal/auth/errors"
)

// VerifyCredential compares a presented credential against the configured
// admin secret. Both sides are trimmed first; the comparison itself is
// constant-time. An empty secret never authorizes anything.
func VerifyCredential(presented, secret string) bool {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return false
	}

	presented = strings.TrimSpace(presented)

	return subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	VerifyPassword(password string) error
}

type service struct {
	adminPassword string
}

func NewService(adminPassword string) Service {
	return &service{adminPassword: adminPassword}
}

// VerifyPassword is the login check behind POST /admin/auth. Unlike the
// request gate, it distinguishes a missing configuration (the operator's
// fault) from a wrong password (the caller's).
func (s *service) VerifyPassword(password string) error {
	if strings.TrimSpace(s.adminPassword) == "" {
		return autherrors.ErrNotConfigured
	}

	if !VerifyCredential(password, s.adminPassword) {
		return autherrors.ErrInvalidPassword
	}

	return nil
}
