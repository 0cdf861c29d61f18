package auth

import (
	"errors"
	"fmt"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt credential. Cost outside bcrypt's
// range falls back to bcrypt.DefaultCost.
func HashPassword(p string, cost int) (string, error) {
	if p == "" {
		return "", fmt.Errorf("password is required: %w", apperr.ErrInvalidInput)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(p), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("password longer than 72 bytes: %w", apperr.ErrInvalidInput)
	}
	return string(b), err
}

// VerifyPassword reports whether plain matches the stored credential.
// A malformed credential is a mismatch, not an error.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
