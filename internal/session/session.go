// ABOUTME: JWT session tokens for resuming a logged-in user without re-entering a code
// ABOUTME: Uses HS256 signing with configurable secret and lifetime

package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session token errors
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// DefaultLifetime is used when a Manager is constructed without an
// explicit token lifetime.
const DefaultLifetime = 30 * 24 * time.Hour

// Manager issues and verifies HS256-signed session tokens carrying a user
// ID in the "sub" claim.
type Manager struct {
	secret   []byte
	lifetime time.Duration
}

// NewManager creates a session manager with the given signing secret. A
// non-positive lifetime falls back to DefaultLifetime.
func NewManager(secret []byte, lifetime time.Duration) *Manager {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Manager{secret: secret, lifetime: lifetime}
}

// Issue creates a session token for the given user ID.
func (m *Manager) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(m.lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates a session token and extracts the user ID from the
// "sub" claim.
func (m *Manager) Verify(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: sub is not a user ID", ErrInvalidToken)
	}
	return userID, nil
}
