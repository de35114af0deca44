package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abuelosolos/Fara/internal/pkg/apperror"
)

var ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid credentials")

// AdminAuthenticator checks the single administrator password and issues
// admin tokens.
type AdminAuthenticator struct {
	passwordHash string
	hasher       PasswordHasher
	jwt          *JWTManager
}

// NewAdminAuthenticator accepts either a bcrypt hash or a plain password
// (hashed once here). The hash wins when both are set.
func NewAdminAuthenticator(passwordHash, plainPassword string, hasher PasswordHasher, jwt *JWTManager) (*AdminAuthenticator, error) {
	if passwordHash == "" {
		if plainPassword == "" {
			return nil, errors.New("admin password is not configured")
		}
		h, err := hasher.Hash(plainPassword)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		passwordHash = h
	}
	return &AdminAuthenticator{passwordHash: passwordHash, hasher: hasher, jwt: jwt}, nil
}

// Verify reports whether password is the admin password.
func (a *AdminAuthenticator) Verify(password string) bool {
	if password == "" {
		return false
	}
	return a.hasher.Compare(a.passwordHash, password) == nil
}

// Login exchanges the admin password for an access token.
func (a *AdminAuthenticator) Login(password string) (string, time.Time, error) {
	if !a.Verify(password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return a.jwt.GenerateAccessToken(RoleAdmin, RoleAdmin)
}
