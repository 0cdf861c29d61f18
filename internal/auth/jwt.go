// internal/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionManager issues and verifies stateless session tokens. A token carries
// only the user id and a fixed expiry; it is never renewed on use, and there is
// no server-side revocation.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Session is an issued token and the moment it stops being valid.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

func (sm *SessionManager) TTL() time.Duration { return sm.ttl }

func (sm *SessionManager) Issue(userID string) (Session, error) {
	if userID == "" {
		return Session{}, errors.New("issue session: empty user id")
	}
	now := sm.now()
	exp := now.Add(sm.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    sm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(sm.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}
	return Session{Token: tok, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Verify returns the user id a token was issued for. Every failure (missing,
// malformed, bad signature, expired) is apperr.ErrUnauthorized.
func (sm *SessionManager) Verify(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("missing session: %w", apperr.ErrUnauthorized)
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return sm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sm.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(sm.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid session: %w", apperr.ErrUnauthorized)
	}
	if claims.UserID == "" {
		return "", fmt.Errorf("session without user: %w", apperr.ErrUnauthorized)
	}
	return claims.UserID, nil
}
